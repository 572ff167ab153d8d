package inmemdb

import (
	"github.com/cnam2653/canvas-assignment-calendar/core"
	"github.com/cnam2653/canvas-assignment-calendar/core/credential"
)

type credentialRepository struct {
	db *credentialTable
}

var _ credential.Repository = (*credentialRepository)(nil)

func NewCredentialRepository(db *DB) credential.Repository {
	return &credentialRepository{db: db.credentials}
}

func (r *credentialRepository) SaveToken(uid, token string) error {
	uid = core.CleanString(uid)
	token = core.CleanString(token)
	var flds []core.FieldError
	if uid == "" {
		flds = append(flds, core.FieldError{Field: "uid", Error: "this field is required"})
	}
	if token == "" {
		flds = append(flds, core.FieldError{Field: "token", Error: "this field is required"})
	}
	if len(flds) > 0 {
		return core.NewValidationError(nil, flds...)
	}

	r.db.Lock()
	defer r.db.Unlock()
	r.db.table[uid] = token // last write wins
	return nil
}

func (r *credentialRepository) GetToken(uid string) (string, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	if token, ok := r.db.table[uid]; ok {
		return token, nil
	}
	return "", credential.ErrNotFound
}
