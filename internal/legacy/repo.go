package legacy

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")
)

// Item is the legacy catalogue record.
type Item struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is the legacy user record. No timestamps in the original surface.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

// Repo holds the two legacy in-memory lists. Counters only ever go up, so
// ids are never reused after a delete.
type Repo struct {
	mu         sync.Mutex
	items      []Item
	users      []User
	nextItemID int
	nextUserID int
}

func NewRepo() *Repo {
	return &Repo{nextItemID: 1, nextUserID: 1}
}

func (r *Repo) Items() []Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Repo) ItemByID(id int) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *Repo) CreateItem(it Item) Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	it.ID = r.nextItemID
	it.CreatedAt = time.Now().UTC()
	r.nextItemID++
	r.items = append(r.items, it)
	return it
}

// UpdateItem replaces the item, preserving id and created_at.
func (r *Repo) UpdateItem(id int, updated Item) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			updated.ID = id
			updated.CreatedAt = it.CreatedAt
			r.items[i] = updated
			return &updated, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *Repo) DeleteItem(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (r *Repo) Users() []User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *Repo) UserByID(id int) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *Repo) CreateUser(u User) User {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextUserID
	r.nextUserID++
	r.users = append(r.users, u)
	return u
}

func (r *Repo) DeleteUser(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
