package config

import "github.com/ayoisaiah/mindful/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownAnimal = &apperr.Error{
		Message: "unknown animal: %s",
	}

	errUnknownTheme = &apperr.Error{
		Message: "unknown theme: %s",
	}

	errUnknownSound = &apperr.Error{
		Message: "unknown ambient sound: %s",
	}

	errInvalidCycleGoal = &apperr.Error{
		Message: "cycle goal must be between 0 and %d",
	}

	errInvalidVolume = &apperr.Error{
		Message: "sound volume must be between %v and %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}
)
