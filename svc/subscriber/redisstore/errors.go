package redisstore

import "errors"

var ErrCorruptRecord = errors.New("redisstore: corrupt subscriber record")
