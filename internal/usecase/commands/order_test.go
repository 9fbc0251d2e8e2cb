//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"website-rentals/internal/domain/order"
	"website-rentals/internal/infra"
	"website-rentals/internal/usecase/commands"
	commandsmock "website-rentals/tests/mock/commands"
	queriesmock "website-rentals/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubTx satisfies pgx.Tx just enough to observe commit/rollback.
type stubTx struct {
	committed  bool
	rolledBack bool
}

func (t *stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}
func (t *stubTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}
func (t *stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *stubTx) Conn() *pgx.Conn                                               { return nil }

type stubTransactor struct {
	tx *stubTx
}

func (d *stubTransactor) Begin(ctx context.Context) (pgx.Tx, error) { return d.tx, nil }

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	tx               *stubTx
	mockOrders       *commandsmock.MockOrderRepository
	mockAvailability *queriesmock.MockAvailabilityQueries
	commands         commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tx = &stubTx{}
	s.mockOrders = commandsmock.NewMockOrderRepository(s.ctrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.ctrl)
	s.commands = commands.NewOrderCommands(&stubTransactor{tx: s.tx}, s.mockOrders, s.mockAvailability)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) draftOrder(userID uuid.UUID, lines ...order.Line) *order.Order {
	o, err := order.Reconstruct(uuid.New(), userID, order.StatusDraft, lines)
	s.Require().NoError(err)
	return o
}

func rentalLine(productID uuid.UUID, qty float64) order.Line {
	return order.Line{
		ID:         uuid.New(),
		ProductID:  productID,
		Quantity:   qty,
		IsRental:   true,
		PickupDate: time.Date(2021, 9, 10, 8, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2021, 9, 12, 18, 0, 0, 0, time.UTC),
	}
}

func (s *OrderCommandsTestSuite) TestConfirmOrder() {
	userID := uuid.New()

	s.Run("success checks the summed quantity per product once", func() {
		productID := uuid.New()
		o := s.draftOrder(userID, rentalLine(productID, 1), rentalLine(productID, 2))

		s.mockOrders.EXPECT().FindByIDForUpdate(gomock.Any(), s.tx, o.ID()).Return(o, nil)
		s.mockAvailability.EXPECT().
			CanRent(gomock.Any(), productID, gomock.Any(), gomock.Any(), 3.0).
			Return(true, nil).Times(1)
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), s.tx, o.ID(), order.StatusConfirmed).Return(nil)
		s.mockOrders.EXPECT().CreateScheduleEntries(gomock.Any(), s.tx, o).Return(nil)

		err := s.commands.ConfirmOrder(context.Background(), o.ID(), userID)
		s.Require().NoError(err)
		s.True(s.tx.committed)
	})
}

func (s *OrderCommandsTestSuite) TestConfirmOrderRejections() {
	userID := uuid.New()

	s.Run("unknown order", func() {
		orderID := uuid.New()
		s.mockOrders.EXPECT().FindByIDForUpdate(gomock.Any(), s.tx, orderID).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		err := s.commands.ConfirmOrder(context.Background(), orderID, userID)
		s.Require().ErrorIs(err, commands.ErrOrderNotFound)
		s.True(s.tx.rolledBack)
	})

	s.Run("another user's order looks like it does not exist", func() {
		o := s.draftOrder(uuid.New(), rentalLine(uuid.New(), 1))
		s.mockOrders.EXPECT().FindByIDForUpdate(gomock.Any(), s.tx, o.ID()).Return(o, nil)

		err := s.commands.ConfirmOrder(context.Background(), o.ID(), userID)
		s.Require().ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("already confirmed", func() {
		o, err := order.Reconstruct(uuid.New(), userID, order.StatusConfirmed, []order.Line{rentalLine(uuid.New(), 1)})
		s.Require().NoError(err)
		s.mockOrders.EXPECT().FindByIDForUpdate(gomock.Any(), s.tx, o.ID()).Return(o, nil)

		err = s.commands.ConfirmOrder(context.Background(), o.ID(), userID)
		s.Require().ErrorIs(err, commands.ErrOrderNotDraft)
	})

	s.Run("unavailable line blocks the whole order", func() {
		productID := uuid.New()
		o := s.draftOrder(userID, rentalLine(productID, 1))

		s.mockOrders.EXPECT().FindByIDForUpdate(gomock.Any(), s.tx, o.ID()).Return(o, nil)
		s.mockAvailability.EXPECT().
			CanRent(gomock.Any(), productID, gomock.Any(), gomock.Any(), 1.0).
			Return(false, nil)

		err := s.commands.ConfirmOrder(context.Background(), o.ID(), userID)
		s.Require().ErrorIs(err, commands.ErrLineNotRentable)
		s.False(s.tx.committed)
	})

	s.Run("concurrent booking surfaces as a schedule conflict", func() {
		productID := uuid.New()
		o := s.draftOrder(userID, rentalLine(productID, 1))

		s.mockOrders.EXPECT().FindByIDForUpdate(gomock.Any(), s.tx, o.ID()).Return(o, nil)
		s.mockAvailability.EXPECT().
			CanRent(gomock.Any(), productID, gomock.Any(), gomock.Any(), 1.0).
			Return(true, nil)
		s.mockOrders.EXPECT().UpdateStatus(gomock.Any(), s.tx, o.ID(), order.StatusConfirmed).Return(nil)
		s.mockOrders.EXPECT().CreateScheduleEntries(gomock.Any(), s.tx, o).
			Return(infra.WrapRepoErr("rental window no longer available", nil, infra.KindConflict))

		err := s.commands.ConfirmOrder(context.Background(), o.ID(), userID)
		s.Require().ErrorIs(err, commands.ErrScheduleConflict)
		s.False(s.tx.committed)
	})
}
