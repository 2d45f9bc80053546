package common

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap/converters"
	"github.com/google/uuid"
)

// UUIDBytes stores a UUID as its 16 raw bytes.
type UUIDBytes struct{}

func (UUIDBytes) ToIntermediate(id uuid.UUID) []byte {
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

func (UUIDBytes) FromIntermediate(b []byte) (uuid.UUID, error) {
	const op errors.Op = "converters.common.UUIDBytes.FromIntermediate"
	srcVal, err := converters.CheckLength(op, b, 16)
	if err != nil {
		return uuid.Nil, errors.New(op).Err(err)
	}
	return uuid.FromBytes(srcVal)
}

// UUIDString stores a UUID in its canonical 36 character text form.
type UUIDString struct{}

func (UUIDString) ToIntermediate(id uuid.UUID) string { return id.String() }

func (UUIDString) FromIntermediate(s string) (uuid.UUID, error) {
	const op errors.Op = "converters.common.UUIDString.FromIntermediate"
	srcVal, err := converters.CheckString(op, s)
	if err != nil {
		return uuid.Nil, errors.New(op).Err(err)
	}
	id, err := uuid.Parse(srcVal)
	if err != nil {
		return uuid.Nil, errors.New(op).Err(err)
	}
	return id, nil
}
