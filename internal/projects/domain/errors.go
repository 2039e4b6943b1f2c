package domain

import "errors"

var ErrDuplicateName = errors.New("project name already exists")
