package corpus

import "errors"

var (
	// ErrEmptyCorpus is returned when no word survives cleaning.
	ErrEmptyCorpus = errors.New("corpus: no usable words")

	// ErrUnsupportedFormat is returned for file extensions no parser handles.
	ErrUnsupportedFormat = errors.New("corpus: unsupported format")

	// ErrInvalidContent is returned when a structured file has an unexpected shape.
	ErrInvalidContent = errors.New("corpus: invalid content")

	// ErrReadSource is returned when a source cannot be opened or read.
	ErrReadSource = errors.New("corpus: failed to read source")

	// ErrInvalidS3Config is returned when an S3 source lacks bucket, key or region.
	ErrInvalidS3Config = errors.New("corpus: invalid S3 configuration")

	// ErrParsingCancelled is returned when the context ends before parsing.
	ErrParsingCancelled = errors.New("corpus: parsing cancelled")
)
