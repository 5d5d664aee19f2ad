package public

import (
	"errors"

	"github.com/Kirov7/CheeseDB/driver"
)

var (
	ErrBrandIsEmpty           = errors.New("the brand can not be empty")
	ErrRecordNotFound         = errors.New("cheese not found")
	ErrIOUnavailable          = errors.New("unable to open file")
	ErrCapacityExceeded       = errors.New("traversal exceeds the configured capacity")
	ErrFileLocked             = driver.ErrFileLocked
	ErrLuaInterpreterDisabled = errors.New("the lua Interpreter is not started, can not support execute lua script")
)
