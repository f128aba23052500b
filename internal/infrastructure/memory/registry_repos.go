package memory

import (
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var (
	_ repository.ItemRepository       = (*itemRepo)(nil)
	_ repository.CategoryRepository   = (*categoryRepo)(nil)
	_ repository.DepartmentRepository = (*departmentRepo)(nil)
	_ repository.LocationRepository   = (*locationRepo)(nil)
	_ repository.UserRepository       = (*userRepo)(nil)
)

type itemRepo struct {
	s *Store
}

func (r *itemRepo) Create(item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextItemID++
	item.ID = r.s.nextItemID
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *itemRepo) GetByID(id int64) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if it, ok := r.s.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *itemRepo) GetByName(name string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *itemRepo) Update(item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *itemRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

func (r *itemRepo) List(limit, offset int) ([]*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *itemRepo) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.items)), nil
}

func (r *itemRepo) CountByCategory(categoryID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, it := range r.s.items {
		if it.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

type categoryRepo struct {
	s *Store
}

func (r *categoryRepo) Create(cat *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextCategoryID++
	cat.ID = r.s.nextCategoryID
	cp := *cat
	r.s.categories[cat.ID] = &cp
	return nil
}

func (r *categoryRepo) GetByID(id int64) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *categoryRepo) Update(cat *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[cat.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *cat
	r.s.categories[cat.ID] = &cp
	return nil
}

func (r *categoryRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.categories, id)
	return nil
}

func (r *categoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

type departmentRepo struct {
	s *Store
}

func (r *departmentRepo) Create(dep *entity.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextDepartmentID++
	dep.ID = r.s.nextDepartmentID
	cp := *dep
	r.s.departments[dep.ID] = &cp
	return nil
}

func (r *departmentRepo) GetByID(id int64) (*entity.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.departments[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *departmentRepo) Update(dep *entity.Department) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.departments[dep.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *dep
	r.s.departments[dep.ID] = &cp
	return nil
}

func (r *departmentRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.departments, id)
	return nil
}

func (r *departmentRepo) List(limit, offset int) ([]*entity.Department, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*entity.Department, 0, len(r.s.departments))
	for _, d := range r.s.departments {
		cp := *d
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

type locationRepo struct {
	s *Store
}

func (r *locationRepo) Create(loc *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextLocationID++
	loc.ID = r.s.nextLocationID
	cp := *loc
	r.s.locations[loc.ID] = &cp
	return nil
}

func (r *locationRepo) GetByID(id int64) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.locations[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (r *locationRepo) Update(loc *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[loc.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *loc
	r.s.locations[loc.ID] = &cp
	return nil
}

func (r *locationRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.locations, id)
	return nil
}

func (r *locationRepo) List(limit, offset int) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*entity.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		cp := *l
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *locationRepo) CountByDepartment(departmentID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, l := range r.s.locations {
		if l.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.nextUserID++
	user.ID = r.s.nextUserID
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) Update(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, u := range r.s.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

func (r *userRepo) List(limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	all := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, limit, offset), nil
}

func (r *userRepo) ListAdmins() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.User
	for _, u := range r.s.users {
		if u.Role == entity.RoleAdmin {
			cp := *u
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *userRepo) CountByDepartment(departmentID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, u := range r.s.users {
		if u.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}
