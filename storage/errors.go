package storage

import "errors"

var ErrItemNotFound = errors.New("item not found in storage")
var ErrItemWithIDAlreadyExists = errors.New("item with the same ID already exists")
var ErrVersionConflict = errors.New("stored version does not match the expected version")
