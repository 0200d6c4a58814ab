package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Fellah73/nursery-management-api-sub000/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, _, _ int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock ClassroomRepository ──

type mockClassroomRepo struct {
	classrooms map[string]*model.Classroom
	seq        int
}

func newMockClassroomRepo() *mockClassroomRepo {
	return &mockClassroomRepo{classrooms: make(map[string]*model.Classroom)}
}

func (m *mockClassroomRepo) Create(_ context.Context, classroom *model.Classroom) error {
	if classroom.ClassroomID == "" {
		m.seq++
		classroom.ClassroomID = fmt.Sprintf("cls-%03d", m.seq)
	}
	m.classrooms[classroom.ClassroomID] = classroom
	return nil
}

func (m *mockClassroomRepo) GetByID(_ context.Context, id string) (*model.Classroom, error) {
	if c, ok := m.classrooms[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassroomRepo) List(_ context.Context, includeInactive bool) ([]model.Classroom, error) {
	var result []model.Classroom
	for _, c := range m.classrooms {
		if !includeInactive && !c.IsActive {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockClassroomRepo) Update(_ context.Context, classroom *model.Classroom) error {
	m.classrooms[classroom.ClassroomID] = classroom
	return nil
}

func (m *mockClassroomRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.classrooms, id)
	return nil
}

// ── Mock ChildRepository ──

type mockChildRepo struct {
	children map[string]*model.Child
	seq      int
}

func newMockChildRepo() *mockChildRepo {
	return &mockChildRepo{children: make(map[string]*model.Child)}
}

func (m *mockChildRepo) Create(_ context.Context, child *model.Child) error {
	if child.ChildID == "" {
		m.seq++
		child.ChildID = fmt.Sprintf("chd-%03d", m.seq)
	}
	m.children[child.ChildID] = child
	return nil
}

func (m *mockChildRepo) GetByID(_ context.Context, id string) (*model.Child, error) {
	if c, ok := m.children[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockChildRepo) List(_ context.Context, classroomID string, _, _ int) ([]model.Child, int64, error) {
	var result []model.Child
	for _, c := range m.children {
		if classroomID != "" && (c.ClassroomID == nil || *c.ClassroomID != classroomID) {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *mockChildRepo) Update(_ context.Context, child *model.Child) error {
	m.children[child.ChildID] = child
	return nil
}

func (m *mockChildRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.children, id)
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events map[string]*model.FacilityEvent
	seq    int
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.FacilityEvent)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.FacilityEvent) error {
	if event.EventID == "" {
		m.seq++
		event.EventID = fmt.Sprintf("evt-%03d", m.seq)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id string) (*model.FacilityEvent, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context, from, to *time.Time) ([]model.FacilityEvent, error) {
	var result []model.FacilityEvent
	for _, e := range m.events {
		if from != nil && e.EventDate.Before(*from) {
			continue
		}
		if to != nil && e.EventDate.After(*to) {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEventRepo) Update(_ context.Context, event *model.FacilityEvent) error {
	m.events[event.EventID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id string) error {
	delete(m.events, id)
	return nil
}

// ── Mock ClassAssignmentRepository ──

type mockClassAssignmentRepo struct {
	assignments map[string][]model.ClassAssignment // classroomID → 指派
}

func newMockClassAssignmentRepo() *mockClassAssignmentRepo {
	return &mockClassAssignmentRepo{assignments: make(map[string][]model.ClassAssignment)}
}

func (m *mockClassAssignmentRepo) ListByClassroom(_ context.Context, classroomID string) ([]model.ClassAssignment, error) {
	return m.assignments[classroomID], nil
}

func (m *mockClassAssignmentRepo) ReplaceByClassroom(_ context.Context, classroomID string, assignments []model.ClassAssignment) error {
	m.assignments[classroomID] = assignments
	return nil
}

// ── Mock TimingConfigRepository ──

type mockTimingConfigRepo struct {
	cfg *model.TimingConfig
}

func newMockTimingConfigRepo() *mockTimingConfigRepo {
	return &mockTimingConfigRepo{}
}

func (m *mockTimingConfigRepo) Get(_ context.Context) (*model.TimingConfig, error) {
	if m.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.cfg, nil
}

func (m *mockTimingConfigRepo) Replace(_ context.Context, cfg *model.TimingConfig) error {
	cfg.Singleton = true
	m.cfg = cfg
	return nil
}

// ── Mock SchedulePeriodRepository ──

type mockSchedulePeriodRepo struct {
	periods  map[string]*model.SchedulePeriod
	slotRepo *mockScheduleSlotRepo // GetActiveByClassroom 需要填充 Slots
	seq      int
}

func newMockSchedulePeriodRepo() *mockSchedulePeriodRepo {
	return &mockSchedulePeriodRepo{periods: make(map[string]*model.SchedulePeriod)}
}

func (m *mockSchedulePeriodRepo) Create(_ context.Context, period *model.SchedulePeriod) error {
	if period.SchedulePeriodID == "" {
		m.seq++
		period.SchedulePeriodID = fmt.Sprintf("sp-%03d", m.seq)
	}
	m.periods[period.SchedulePeriodID] = period
	return nil
}

func (m *mockSchedulePeriodRepo) GetByID(_ context.Context, id string) (*model.SchedulePeriod, error) {
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSchedulePeriodRepo) GetActiveByClassroom(ctx context.Context, classroomID string) (*model.SchedulePeriod, error) {
	for _, p := range m.periods {
		if p.ClassroomID == classroomID && p.IsActive {
			cp := *p
			if m.slotRepo != nil {
				cp.Slots, _ = m.slotRepo.ListByPeriod(ctx, p.SchedulePeriodID)
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSchedulePeriodRepo) ListByClassroom(_ context.Context, classroomID string) ([]model.SchedulePeriod, error) {
	var result []model.SchedulePeriod
	for _, p := range m.periods {
		if p.ClassroomID == classroomID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockSchedulePeriodRepo) ListAll(_ context.Context) ([]model.SchedulePeriod, error) {
	var result []model.SchedulePeriod
	for _, p := range m.periods {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockSchedulePeriodRepo) ListActive(_ context.Context) ([]model.SchedulePeriod, error) {
	var result []model.SchedulePeriod
	for _, p := range m.periods {
		if p.IsActive {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockSchedulePeriodRepo) Update(_ context.Context, period *model.SchedulePeriod) error {
	m.periods[period.SchedulePeriodID] = period
	return nil
}

func (m *mockSchedulePeriodRepo) SetActiveByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		if p, ok := m.periods[id]; ok {
			p.IsActive = true
		}
	}
	return nil
}

func (m *mockSchedulePeriodRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.periods, id)
	}
	return nil
}

// ── Mock ScheduleSlotRepository ──

type mockScheduleSlotRepo struct {
	slots map[string][]model.ScheduleSlot // periodID → 时段
	seq   int
}

func newMockScheduleSlotRepo() *mockScheduleSlotRepo {
	return &mockScheduleSlotRepo{slots: make(map[string][]model.ScheduleSlot)}
}

func (m *mockScheduleSlotRepo) ListByPeriod(_ context.Context, periodID string) ([]model.ScheduleSlot, error) {
	return m.slots[periodID], nil
}

func (m *mockScheduleSlotRepo) BatchCreate(_ context.Context, slots []model.ScheduleSlot) error {
	for i := range slots {
		if slots[i].ScheduleSlotID == "" {
			m.seq++
			slots[i].ScheduleSlotID = fmt.Sprintf("ss-%03d", m.seq)
		}
		m.slots[slots[i].SchedulePeriodID] = append(m.slots[slots[i].SchedulePeriodID], slots[i])
	}
	return nil
}

func (m *mockScheduleSlotRepo) DeleteByPeriod(_ context.Context, periodID string) error {
	delete(m.slots, periodID)
	return nil
}

func (m *mockScheduleSlotRepo) DeleteByPeriodIDs(_ context.Context, periodIDs []string) error {
	for _, id := range periodIDs {
		delete(m.slots, id)
	}
	return nil
}

// ── Mock MenuPeriodRepository ──

type mockMenuPeriodRepo struct {
	periods  map[string]*model.MenuPeriod
	mealRepo *mockMealRepo // GetActiveByCategory 需要填充 Meals
	seq      int
}

func newMockMenuPeriodRepo() *mockMenuPeriodRepo {
	return &mockMenuPeriodRepo{periods: make(map[string]*model.MenuPeriod)}
}

func (m *mockMenuPeriodRepo) Create(_ context.Context, period *model.MenuPeriod) error {
	if period.MenuPeriodID == "" {
		m.seq++
		period.MenuPeriodID = fmt.Sprintf("mp-%03d", m.seq)
	}
	m.periods[period.MenuPeriodID] = period
	return nil
}

func (m *mockMenuPeriodRepo) GetByID(_ context.Context, id string) (*model.MenuPeriod, error) {
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuPeriodRepo) GetActiveByCategory(ctx context.Context, category string) (*model.MenuPeriod, error) {
	for _, p := range m.periods {
		if p.Category == category && p.IsActive {
			cp := *p
			if m.mealRepo != nil {
				cp.Meals, _ = m.mealRepo.ListByPeriod(ctx, p.MenuPeriodID)
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuPeriodRepo) ListByCategory(_ context.Context, category string) ([]model.MenuPeriod, error) {
	var result []model.MenuPeriod
	for _, p := range m.periods {
		if p.Category == category {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockMenuPeriodRepo) ListAll(_ context.Context) ([]model.MenuPeriod, error) {
	var result []model.MenuPeriod
	for _, p := range m.periods {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockMenuPeriodRepo) ListActive(_ context.Context) ([]model.MenuPeriod, error) {
	var result []model.MenuPeriod
	for _, p := range m.periods {
		if p.IsActive {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockMenuPeriodRepo) Update(_ context.Context, period *model.MenuPeriod) error {
	m.periods[period.MenuPeriodID] = period
	return nil
}

func (m *mockMenuPeriodRepo) SetActiveByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		if p, ok := m.periods[id]; ok {
			p.IsActive = true
		}
	}
	return nil
}

func (m *mockMenuPeriodRepo) DeleteByIDs(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(m.periods, id)
	}
	return nil
}

// ── Mock MealRepository ──

type mockMealRepo struct {
	meals map[string][]model.Meal // periodID → 餐食
	seq   int
}

func newMockMealRepo() *mockMealRepo {
	return &mockMealRepo{meals: make(map[string][]model.Meal)}
}

func (m *mockMealRepo) ListByPeriod(_ context.Context, periodID string) ([]model.Meal, error) {
	return m.meals[periodID], nil
}

func (m *mockMealRepo) BatchCreate(_ context.Context, meals []model.Meal) error {
	for i := range meals {
		if meals[i].MealID == "" {
			m.seq++
			meals[i].MealID = fmt.Sprintf("meal-%03d", m.seq)
		}
		m.meals[meals[i].MenuPeriodID] = append(m.meals[meals[i].MenuPeriodID], meals[i])
	}
	return nil
}

func (m *mockMealRepo) DeleteByPeriod(_ context.Context, periodID string) error {
	delete(m.meals, periodID)
	return nil
}

func (m *mockMealRepo) DeleteByPeriodIDs(_ context.Context, periodIDs []string) error {
	for _, id := range periodIDs {
		delete(m.meals, id)
	}
	return nil
}
