package plans

import "errors"

var (
	ErrNotFound          = errors.New("plan not found")
	ErrNotCompleted      = errors.New("plan not completed")
	ErrNoDocument        = errors.New("document not attached")
	ErrPageCountMismatch = errors.New("document page count mismatch")
	ErrInvalidDocument   = errors.New("invalid pdf document")
)

const (
	ErrorCodeRender    = "RENDER_ERROR"
	ErrorCodeStorage   = "STORAGE_ERROR"
	ErrorCodePageCount = "PAGE_COUNT_MISMATCH"
	ErrorCodeInternal  = "INTERNAL_ERROR"
)
