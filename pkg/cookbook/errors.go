package cookbook

import (
	"errors"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
)

// Error kinds returned (wrapped) by the store and the resolver.
var (
	ErrInvalidType           = errors.New("entry type must be recipe or ingredient")
	ErrInvalidName           = errors.New("entry name must not be empty")
	ErrDuplicateName         = errors.New("entry name already exists")
	ErrInvalidCookTime       = errors.New("cook time must be a non-negative integer")
	ErrDuplicateRequiredItem = errors.New("required item listed more than once")
	ErrReferenceNotFound     = errors.New("referenced entry not found")
	ErrNotARecipe            = errors.New("entry is not a recipe")
	ErrCyclicReference       = errors.New("recipe requires itself")
)

// ContextKeyReason is the StructuredError context key carrying the kind name.
const ContextKeyReason = "reason"

var reasons = []struct {
	err    error
	reason string
}{
	{ErrInvalidType, "InvalidType"},
	{ErrInvalidName, "InvalidName"},
	{ErrDuplicateName, "DuplicateName"},
	{ErrInvalidCookTime, "InvalidCookTime"},
	{ErrDuplicateRequiredItem, "DuplicateRequiredItem"},
	{ErrReferenceNotFound, "ReferenceNotFound"},
	{ErrNotARecipe, "NotARecipe"},
	{ErrCyclicReference, "CyclicReference"},
}

// ReasonOf returns the kind name of a cookbook error, e.g. "DuplicateName",
// or an empty string when err is not one of the cookbook kinds.
func ReasonOf(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}

// newError wraps kind in an INVALID_REQUEST structured error tagged with
// its reason.
func newError(kind error, fields map[string]any) error {
	ctx := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		ctx[k] = v
	}
	ctx[ContextKeyReason] = ReasonOf(kind)
	return cberrors.WrapWithContext(cberrors.ErrCodeInvalidRequest, kind.Error(), kind, ctx)
}
