package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/entities"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/config"
	"quotation-system/pkg/constants"
	"quotation-system/pkg/eventbus"
	"quotation-system/pkg/utils"
)

// --- Заглушки хранилища для доски назначений ---

type stubItemRepo struct {
	items []entities.Item

	listErr     error
	assignErr   error
	unassignErr error

	listCalls     int
	assignCalls   int
	unassignCalls int
	lastItemIDs   []uint64
}

func (s *stubItemRepo) ListItems(ctx context.Context, limit uint64) ([]entities.Item, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]entities.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubItemRepo) ListItemsByInquiry(ctx context.Context, inquiryID uint64) ([]entities.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) FindItem(ctx context.Context, id uint64) (*entities.Item, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, fmt.Errorf("позиция %d не найдена", id)
}

func (s *stubItemRepo) AssignItems(ctx context.Context, itemIDs []uint64, assigneeID uint64) error {
	s.assignCalls++
	s.lastItemIDs = itemIDs
	if s.assignErr != nil {
		return s.assignErr
	}
	for i := range s.items {
		for _, id := range itemIDs {
			if s.items[i].ID == id {
				s.items[i].AssignedToID = utils.ToPtr(assigneeID)
				if s.items[i].Status == constants.ItemStatusPending {
					s.items[i].Status = constants.ItemStatusAssigned
				}
			}
		}
	}
	return nil
}

func (s *stubItemRepo) UnassignItems(ctx context.Context, itemIDs []uint64) error {
	s.unassignCalls++
	s.lastItemIDs = itemIDs
	if s.unassignErr != nil {
		return s.unassignErr
	}
	for i := range s.items {
		for _, id := range itemIDs {
			if s.items[i].ID == id {
				s.items[i].AssignedToID = nil
				s.items[i].Status = constants.ItemStatusPending
			}
		}
	}
	return nil
}

func (s *stubItemRepo) SaveCosting(ctx context.Context, itemID uint64, costing entities.Costing) error {
	return nil
}

func (s *stubItemRepo) UpdateItemStatus(ctx context.Context, itemID uint64, status string) error {
	return nil
}

func (s *stubItemRepo) UpdateItemsStatusInTx(ctx context.Context, tx pgx.Tx, itemIDs []uint64, status string) error {
	return nil
}

type stubUserRepo struct {
	users     []entities.User
	findCalls int
}

func (s *stubUserRepo) ListUsers(ctx context.Context, limit, offset uint64) ([]entities.User, uint64, error) {
	return s.users, uint64(len(s.users)), nil
}

func (s *stubUserRepo) ListAssignees(ctx context.Context, roles []string, activeOnly bool) ([]entities.User, error) {
	out := make([]entities.User, 0)
	for _, u := range s.users {
		for _, r := range roles {
			if u.Role == r && (!activeOnly || u.IsActive) {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func (s *stubUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	s.findCalls++
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, fmt.Errorf("пользователь %d не найден", id)
}

func (s *stubUserRepo) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, fmt.Errorf("не реализовано")
}

func (s *stubUserRepo) CreateUser(ctx context.Context, data dto.CreateUserDTO, hashedPassword string) (uint64, error) {
	return 0, fmt.Errorf("не реализовано")
}

type stubCustomerRepo struct {
	customers []entities.Customer
	listErr   error
}

func (s *stubCustomerRepo) ListCustomers(ctx context.Context, activeOnly bool, limit uint64) ([]entities.Customer, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.customers, nil
}

func (s *stubCustomerRepo) FindCustomer(ctx context.Context, id uint64) (*entities.Customer, error) {
	return nil, fmt.Errorf("не реализовано")
}

func (s *stubCustomerRepo) CreateCustomer(ctx context.Context, data dto.CreateCustomerDTO) (uint64, error) {
	return 0, fmt.Errorf("не реализовано")
}

func (s *stubCustomerRepo) UpdateCustomer(ctx context.Context, id uint64, data dto.UpdateCustomerDTO) error {
	return fmt.Errorf("не реализовано")
}

func (s *stubCustomerRepo) SoftDeleteCustomer(ctx context.Context, id uint64) error {
	return fmt.Errorf("не реализовано")
}

type stubInquiryRepo struct {
	inquiries []entities.Inquiry
}

func (s *stubInquiryRepo) ListInquiries(ctx context.Context, limit uint64) ([]entities.Inquiry, error) {
	return s.inquiries, nil
}

func (s *stubInquiryRepo) GetInquiries(ctx context.Context, limit, offset uint64) ([]entities.Inquiry, uint64, error) {
	return s.inquiries, uint64(len(s.inquiries)), nil
}

func (s *stubInquiryRepo) FindInquiry(ctx context.Context, id uint64) (*entities.Inquiry, error) {
	return nil, fmt.Errorf("не реализовано")
}

func (s *stubInquiryRepo) CreateInquiryInTx(ctx context.Context, tx pgx.Tx, creatorID uint64, data dto.CreateInquiryDTO) (uint64, error) {
	return 0, fmt.Errorf("не реализовано")
}

func (s *stubInquiryRepo) UpdateInquiry(ctx context.Context, id uint64, data dto.UpdateInquiryDTO) error {
	return fmt.Errorf("не реализовано")
}

func (s *stubInquiryRepo) SoftDeleteInquiry(ctx context.Context, id uint64) error {
	return fmt.Errorf("не реализовано")
}

var _ repositories.ItemRepositoryInterface = (*stubItemRepo)(nil)
var _ repositories.UserRepositoryInterface = (*stubUserRepo)(nil)
var _ repositories.CustomerRepositoryInterface = (*stubCustomerRepo)(nil)
var _ repositories.InquiryRepositoryInterface = (*stubInquiryRepo)(nil)

func newBoardFixture(itemRepo *stubItemRepo, userRepo *stubUserRepo) (AssignmentBoardServiceInterface, *stubCustomerRepo) {
	logger := zap.NewNop()
	customerRepo := &stubCustomerRepo{customers: []entities.Customer{{ID: 7, Name: "ООО Акме", IsActive: true}}}
	inquiryRepo := &stubInquiryRepo{}
	svc := NewAssignmentBoardService(
		itemRepo, userRepo, customerRepo, inquiryRepo,
		eventbus.New(logger), config.BoardConfig{FetchLimit: 500}, logger)
	return svc, customerRepo
}

func vpUser(id uint64, fio string) entities.User {
	return entities.User{ID: id, Fio: fio, Role: constants.RoleVP, IsActive: true}
}

func TestBoard_LoadPopulatesSnapshot(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{makeItem(1, "Кронштейн", nil)}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)

	require.NoError(t, svc.Load(context.Background()))

	board := svc.Board()
	assert.Len(t, board.UnassignedItems, 1)
	assert.Empty(t, board.AssignedItems)
	require.Len(t, board.Workloads, 1)
	assert.Len(t, board.Customers, 1)
	assert.False(t, board.Refreshing)
}

// Отказ любой из четырех выборок не должен частично применять результаты
// остальных: предыдущий кадр сохраняется как есть.
func TestBoard_FirstReadLoadsSnapshot(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{makeItem(1, "Кронштейн", nil)}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)

	// До первой загрузки кадр пуст.
	assert.Empty(t, svc.Board().UnassignedItems)

	require.NoError(t, svc.EnsureLoaded(context.Background()))

	board := svc.Board()
	require.Len(t, board.UnassignedItems, 1, "первое чтение должно загрузить рабочий набор")
	require.Len(t, board.Workloads, 1)

	// Повторный вызов при загруженном кадре не перечитывает данные.
	callsAfterLoad := itemRepo.listCalls
	require.NoError(t, svc.EnsureLoaded(context.Background()))
	assert.Equal(t, callsAfterLoad, itemRepo.listCalls)
}

func TestBoard_LoadFailureRetainsPreviousSnapshot(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{makeItem(1, "Кронштейн", nil)}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, customerRepo := newBoardFixture(itemRepo, userRepo)

	require.NoError(t, svc.Load(context.Background()))
	before := svc.Board()

	itemRepo.items = append(itemRepo.items, makeItem(2, "Пластина", nil))
	customerRepo.listErr = fmt.Errorf("сеть недоступна")

	err := svc.Load(context.Background())
	require.Error(t, err, "отказ одной выборки должен отдавать агрегированную ошибку")

	after := svc.Board()
	assert.Equal(t, before, after, "предыдущий кадр должен сохраниться без изменений")
}

func TestBoard_AssignScenario(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{makeItem(1, "Кронштейн", nil)}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.Assign(context.Background(), dto.AssignItemsDTO{
		ItemIDs:    []uint64{1},
		AssigneeID: null.Uint64From(1),
	})
	require.NoError(t, err)

	board := svc.Board()
	assert.Empty(t, board.UnassignedItems, "после назначения неназначенных быть не должно")
	require.Len(t, board.AssignedItems, 1)
	require.Len(t, board.Workloads, 1)
	assert.Equal(t, 1, board.Workloads[0].Pending, "счетчик исполнителя должен вырасти после перезагрузки")
}

// Отказавшая команда назначения не должна оставлять следов: производные
// представления остаются байт-в-байт прежними.
func TestBoard_AssignFailureLeavesStateUntouched(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{makeItem(1, "Кронштейн", nil)}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)
	require.NoError(t, svc.Load(context.Background()))

	before := svc.Board()
	beforeWorkloads := svc.Workloads()

	itemRepo.assignErr = fmt.Errorf("хранилище отклонило запись")
	err := svc.Assign(context.Background(), dto.AssignItemsDTO{
		ItemIDs:    []uint64{1},
		AssigneeID: null.Uint64From(1),
	})
	require.Error(t, err)

	assert.Equal(t, before, svc.Board())
	assert.Equal(t, beforeWorkloads, svc.Workloads())
}

func TestBoard_BulkUnassignSingleBatchedCall(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{
		statusItem(1, constants.ItemStatusAssigned, 1),
		statusItem(2, constants.ItemStatusAssigned, 1),
	}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.Assign(context.Background(), dto.AssignItemsDTO{
		ItemIDs:    []uint64{1, 2},
		AssigneeID: null.Uint64{},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, itemRepo.unassignCalls, "снятие должно уйти одним пакетным вызовом")
	assert.Equal(t, []uint64{1, 2}, itemRepo.lastItemIDs)
	assert.Zero(t, itemRepo.assignCalls)

	board := svc.Board()
	assert.Len(t, board.UnassignedItems, 2)
	assert.Empty(t, board.AssignedItems)
}

func TestBoard_AssignRejectsNonAssignableRole(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{makeItem(1, "Кронштейн", nil)}}
	userRepo := &stubUserRepo{users: []entities.User{
		{ID: 5, Fio: "Орлова Мария", Role: constants.RoleSales, IsActive: true},
	}}
	svc, _ := newBoardFixture(itemRepo, userRepo)
	require.NoError(t, svc.Load(context.Background()))

	err := svc.Assign(context.Background(), dto.AssignItemsDTO{
		ItemIDs:    []uint64{1},
		AssigneeID: null.Uint64From(5),
	})
	require.Error(t, err, "назначение на роль SALES должно отклоняться")
	assert.Zero(t, itemRepo.assignCalls, "хранилище не должно вызываться при невалидном исполнителе")
}

// SetFilters пересчитывает представления от уже загруженного кадра и не
// ходит в хранилище.
func TestBoard_SetFiltersDoesNotRefetch(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{
		makeItem(1, "Кронштейн стальной", nil),
		makeItem(2, "Болт анкерный", nil),
	}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)
	require.NoError(t, svc.Load(context.Background()))

	callsAfterLoad := itemRepo.listCalls
	svc.SetFilters(dto.BoardFilterDTO{Search: null.StringFrom("болт")})

	board := svc.Board()
	require.Len(t, board.UnassignedItems, 1)
	assert.Equal(t, uint64(2), board.UnassignedItems[0].ID)
	assert.Equal(t, callsAfterLoad, itemRepo.listCalls, "фильтрация не должна вызывать выборку")

	// Загрузка исполнителей считается от нефильтрованного набора.
	require.Len(t, board.Workloads, 1)
	assert.Zero(t, board.Workloads[0].Total)
}

func TestBoard_WorkloadsUseUnfilteredItems(t *testing.T) {
	itemRepo := &stubItemRepo{items: []entities.Item{
		statusItem(1, constants.ItemStatusAssigned, 1),
		makeItem(2, "Кронштейн", nil),
	}}
	userRepo := &stubUserRepo{users: []entities.User{vpUser(1, "Петров Иван")}}
	svc, _ := newBoardFixture(itemRepo, userRepo)
	require.NoError(t, svc.Load(context.Background()))

	svc.SetFilters(dto.BoardFilterDTO{AssignedTo: null.StringFrom(constants.UnassignedSentinel)})

	board := svc.Board()
	require.Len(t, board.UnassignedItems, 1, "фильтр-страж оставляет только свободные позиции")
	require.Len(t, board.Workloads, 1)
	assert.Equal(t, 1, board.Workloads[0].Total,
		"счетчики считаются от полного кадра, а не от отфильтрованного")
}
