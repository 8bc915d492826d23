package model

import "errors"

// ErrSchema reports a table that lacks a required column.
var ErrSchema = errors.New("schema error")
