/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

// Method of the base prototype which returns the owning runtime
const Method_GetSession = "getSession"

// Method of the class document native table which returns class label
const Method_ToIntlString = "toIntlString"
