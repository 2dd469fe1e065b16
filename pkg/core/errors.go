/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"github.com/voedger/docmodel/pkg/schema"
)

func ErrFieldNotFound(class schema.ClassRef, field string) error {
	return schema.EnrichError(schema.ErrNotFound, "field «%s» in class «%v»", field, class)
}

func ErrMethodNotFound(class schema.ClassRef, method string) error {
	return schema.EnrichError(schema.ErrNotFound, "method «%s» in class «%v»", method, class)
}

func ErrNativeHandleNotFound(class schema.ClassRef, h schema.NativeHandle) error {
	return schema.EnrichError(schema.ErrUnknownNativeHandle, "«%v» declared by class «%v»", h, class)
}

func ErrNativeCollision(class schema.ClassRef, h schema.NativeHandle, name string) error {
	return schema.EnrichError(schema.ErrSchema, "native «%v» method «%s» collides with attribute of class «%v»", h, name, class)
}

func ErrWrongValue(kind string, v any) error {
	return schema.EnrichError(schema.ErrConvert, "%s expected, got %T", kind, v)
}

func ErrMixinNotApplied(id schema.DocRef, mixin schema.ClassRef) error {
	return schema.EnrichError(schema.ErrNotFound, "mixin «%v» is not applied to «%v»", mixin, id)
}

func ErrMixinNamespaceMissed(id schema.DocRef, mixin schema.ClassRef) error {
	return schema.EnrichError(schema.ErrNotFound, "namespace of mixin «%v» is missed in «%v»", mixin, id)
}
