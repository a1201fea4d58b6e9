package config

import "errors"

var (
	ErrRead  = errors.New("error reading config file")
	ErrParse = errors.New("error parsing config file")
)
