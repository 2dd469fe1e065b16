/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	appName  = "docmodel"
	appShort = "Prototype-based document model runtime"
)

const (
	flag_Config = "config"
	flag_Where  = "where"
	flag_One    = "one"
	flag_Index  = "index"
	flag_Desc   = "desc"
)

const fieldValueSeparator = "="
