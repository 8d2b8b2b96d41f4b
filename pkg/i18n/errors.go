package i18n

import "errors"

var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON translations")
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrUnsupportedFormat = errors.New("unsupported translation file format")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrInvalidStructure  = errors.New("invalid translation file structure")
	ErrNoTranslations    = errors.New("no translations loaded")
)
