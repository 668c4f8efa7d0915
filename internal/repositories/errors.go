package repositories

import (
	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
)

// NewRecordNotFoundError reports a missing record of the given kind
func NewRecordNotFoundError(kind, id string) error {
	return dnderr.NotFoundf("%s %s not found", kind, id).WithMeta(kind+"_id", id)
}

// NewRecordExistsError reports a record whose identity is already stored
func NewRecordExistsError(kind, id string) error {
	return dnderr.AlreadyExistsf("%s %s already exists", kind, id).WithMeta(kind+"_id", id)
}

// NewStorageError wraps a failure in the backing store
func NewStorageError(err error, op, kind string) error {
	return dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to "+op+" "+kind).
		WithMeta("op", op)
}
