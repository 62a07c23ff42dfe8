package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/models"
)

// In-memory repository fakes. They mimic the storage-layer behavior the
// services depend on: record-not-found sentinels and unique-constraint
// violations surfacing as gorm.ErrDuplicatedKey.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetList(params models.ListParams) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, u := range r.users {
		if u.ID != user.ID && (u.Username == user.Username || u.Email == user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type sentMail struct {
	to       string
	username string
	code     string
}

type captureMailer struct {
	sent []sentMail
	fail error
}

func (m *captureMailer) SendConfirmationCode(toEmail, username, code string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{to: toEmail, username: username, code: code})
	return nil
}

func (m *captureMailer) lastCode() string {
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].code
}

type fakeTitleRepo struct {
	nextID uint
	titles map[uint]*models.Title
}

func newFakeTitleRepo() *fakeTitleRepo {
	return &fakeTitleRepo{titles: map[uint]*models.Title{}}
}

func (r *fakeTitleRepo) Create(title *models.Title) error {
	r.nextID++
	title.ID = r.nextID
	stored := *title
	r.titles[title.ID] = &stored
	return nil
}

func (r *fakeTitleRepo) GetByID(id uint) (*models.Title, error) {
	t, ok := r.titles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTitleRepo) GetList(params models.TitleListParams) ([]models.Title, int64, error) {
	var out []models.Title
	for _, t := range r.titles {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTitleRepo) Update(title *models.Title) error {
	if _, ok := r.titles[title.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *title
	r.titles[title.ID] = &stored
	return nil
}

func (r *fakeTitleRepo) ReplaceGenres(title *models.Title, genres []models.Genre) error {
	stored, ok := r.titles[title.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Genres = genres
	return nil
}

func (r *fakeTitleRepo) Delete(id uint) error {
	if _, ok := r.titles[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.titles, id)
	return nil
}

type fakeReviewRepo struct {
	nextID uint
	rows   map[uint]*models.Review
	// skipExistsCheck makes ExistsByAuthorAndTitle lie, simulating the
	// read-then-write race where two creates pass the advisory check.
	skipExistsCheck bool
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{rows: map[uint]*models.Review{}}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	for _, existing := range r.rows {
		if existing.AuthorID == review.AuthorID && existing.TitleID == review.TitleID {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	review.ID = r.nextID
	stored := *review
	r.rows[review.ID] = &stored
	return nil
}

func (r *fakeReviewRepo) GetByID(titleID, reviewID uint) (*models.Review, error) {
	review, ok := r.rows[reviewID]
	if !ok || review.TitleID != titleID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (r *fakeReviewRepo) GetListByTitle(titleID uint, params models.ListParams) ([]models.Review, int64, error) {
	var out []models.Review
	for _, review := range r.rows {
		if review.TitleID == titleID {
			out = append(out, *review)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) ExistsByAuthorAndTitle(authorID, titleID uint) (bool, error) {
	if r.skipExistsCheck {
		return false, nil
	}
	for _, review := range r.rows {
		if review.AuthorID == authorID && review.TitleID == titleID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) Update(review *models.Review) error {
	if _, ok := r.rows[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *review
	r.rows[review.ID] = &stored
	return nil
}

func (r *fakeReviewRepo) Delete(review *models.Review) error {
	if _, ok := r.rows[review.ID]; !ok {
		return errors.New("delete of missing review")
	}
	delete(r.rows, review.ID)
	return nil
}
