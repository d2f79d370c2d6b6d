package service

import "errors"

// ErrInvalidCredentials is returned by Login for both an unknown username
// and a wrong password, so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")
