package scoring

import "errors"

var (
	ErrUnknownField    = errors.New("unknown rating field")
	ErrScoreOutOfRange = errors.New("score out of range")
	ErrFieldDisabled   = errors.New("field is disabled for the selected tracks")
	ErrMissingTeam     = errors.New("team key is required")
	ErrMissingJudge    = errors.New("judge id is required")
	ErrInvalidRating   = errors.New("invalid rating")
	ErrMalformedImport = errors.New("malformed ratings file")
)
