package combibuild

import "errors"

// ErrConfig is wrapped by errors caused by an invalid or ambiguous
// combination of settings: no pairing strategy selected, an unknown
// guide pairing policy, or row/column gene lists supplied inconsistently
var ErrConfig = errors.New("configuration error")

// ErrData is wrapped by errors caused by the input design table itself:
// a missing required column, or an empty gene/guide value where a join
// key is required
var ErrData = errors.New("data error")
