/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package protocol

const (
	TxKind_Create TxKind = "create"
	TxKind_Update TxKind = "update"
	TxKind_Delete TxKind = "delete"
)

const (
	Direction_Asc  Direction = "asc"
	Direction_Desc Direction = "desc"
)

// Method names of the core protocol as seen by transports
const (
	Method_Find       = "find"
	Method_FindOne    = "findOne"
	Method_Tx         = "tx"
	Method_LoadDomain = "loadDomain"
)
