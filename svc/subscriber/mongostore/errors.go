package mongostore

import "errors"

var ErrEnsureIndexes = errors.New("mongostore: failed to ensure indexes")
