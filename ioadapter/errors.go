package ioadapter

import "errors"

// ErrMissingHeader is returned when a CSV file is empty or its header
// row doesn't match the expected column names.
var ErrMissingHeader = errors.New("ioadapter: missing or malformed header row")

// ErrMalformedRow is returned when a data row doesn't parse into the
// expected column types.
var ErrMalformedRow = errors.New("ioadapter: malformed row")
