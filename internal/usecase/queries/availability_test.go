//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"website-rentals/internal/domain/product"
	"website-rentals/internal/domain/schedule"
	"website-rentals/internal/infra"
	"website-rentals/internal/pkg/clock"
	"website-rentals/internal/usecase/queries"
	"website-rentals/tests/common/builder"
	queriesmock "website-rentals/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockProducts     *queriesmock.MockProductReadStore
	mockInventory    *queriesmock.MockInventoryReadStore
	mockReservations *queriesmock.MockReservationReadStore
	clock            *clock.MockClock
	queries          queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockProducts = queriesmock.NewMockProductReadStore(s.ctrl)
	s.mockInventory = queriesmock.NewMockInventoryReadStore(s.ctrl)
	s.mockReservations = queriesmock.NewMockReservationReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC))
	s.queries = queries.NewAvailabilityQueries(s.mockProducts, s.mockInventory, s.mockReservations, s.clock)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) window() (time.Time, time.Time) {
	return time.Date(2021, 9, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2021, 9, 12, 18, 0, 0, 0, time.UTC)
}

func (s *AvailabilityQueriesTestSuite) TestGetAvailableQuantity() {
	start, stop := s.window()

	s.Run("subtracts overlapping reservations only", func() {
		pv := builder.NewProductBuilder().BuildView()
		overlapping := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ProductID = pv.ID
			b.PickupDate = time.Date(2021, 9, 11, 8, 0, 0, 0, time.UTC)
			b.ReturnDate = time.Date(2021, 9, 11, 12, 0, 0, 0, time.UTC)
			b.Quantity = 2
		}).Build()
		disjoint := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ProductID = pv.ID
			b.PickupDate = time.Date(2021, 9, 20, 8, 0, 0, 0, time.UTC)
			b.ReturnDate = time.Date(2021, 9, 21, 8, 0, 0, 0, time.UTC)
		}).Build()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 3, InRent: 2}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return([]schedule.Reservation{overlapping, disjoint}, nil)

		qty, err := s.queries.GetAvailableQuantity(context.Background(), pv.ID, start, stop)
		s.Require().NoError(err)
		s.Equal(3.0, qty)
	})

	s.Run("a reservation returning exactly at the window start still counts", func() {
		pv := builder.NewProductBuilder().BuildView()
		touching := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ProductID = pv.ID
			b.PickupDate = time.Date(2021, 9, 9, 8, 0, 0, 0, time.UTC)
			b.ReturnDate = start
		}).Build()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 1}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return([]schedule.Reservation{touching}, nil)

		qty, err := s.queries.GetAvailableQuantity(context.Background(), pv.ID, start, stop)
		s.Require().NoError(err)
		s.Equal(0.0, qty)
	})

	s.Run("floors at zero when overbooked", func() {
		pv := builder.NewProductBuilder().BuildView()
		big := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ProductID = pv.ID
			b.PickupDate = start
			b.ReturnDate = stop
			b.Quantity = 10
		}).Build()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 2}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return([]schedule.Reservation{big}, nil)

		qty, err := s.queries.GetAvailableQuantity(context.Background(), pv.ID, start, stop)
		s.Require().NoError(err)
		s.Equal(0.0, qty)
	})

	s.Run("pooled strategy sums over the whole family", func() {
		siblingA, siblingB := uuid.New(), uuid.New()
		pv := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Strategy = product.StrategyPooled
			b.VariantIDs = []uuid.UUID{siblingA, siblingB}
		}).BuildView()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{siblingA, siblingB}).
			Return(queries.InventorySnapshot{OnHand: 4}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{siblingA, siblingB}).
			Return(nil, nil)

		qty, err := s.queries.GetAvailableQuantity(context.Background(), pv.ID, start, stop)
		s.Require().NoError(err)
		s.Equal(4.0, qty)
	})

	s.Run("unknown product maps to ErrProductNotFound", func() {
		id := uuid.New()
		s.mockProducts.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		_, err := s.queries.GetAvailableQuantity(context.Background(), id, start, stop)
		s.Require().ErrorIs(err, queries.ErrProductNotFound)
	})
}

func (s *AvailabilityQueriesTestSuite) TestCanRent() {
	start, stop := s.window()

	s.Run("services are always bookable", func() {
		pv := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Kind = product.KindService
		}).BuildView()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)

		ok, err := s.queries.CanRent(context.Background(), pv.ID, start, stop, 100)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("non-rentable physical goods are refused", func() {
		pv := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Rentable = false
		}).BuildView()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)

		ok, err := s.queries.CanRent(context.Background(), pv.ID, start, stop, 1)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("capacity exactly met is allowed", func() {
		pv := builder.NewProductBuilder().BuildView()
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ProductID = pv.ID
			b.PickupDate = start
			b.ReturnDate = stop
		}).Build()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 2}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return([]schedule.Reservation{existing}, nil)

		ok, err := s.queries.CanRent(context.Background(), pv.ID, start, stop, 1)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("one unit over capacity is refused", func() {
		pv := builder.NewProductBuilder().BuildView()
		existing := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ProductID = pv.ID
			b.PickupDate = start
			b.ReturnDate = stop
		}).Build()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 2}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return([]schedule.Reservation{existing}, nil)

		ok, err := s.queries.CanRent(context.Background(), pv.ID, start, stop, 2)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("pickup inside the preparation window is refused", func() {
		s.clock.Set(time.Date(2021, 9, 10, 6, 30, 0, 0, time.UTC))
		pv := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.PreparationTime = 3
		}).BuildView()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 5}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(nil, nil)

		pickup := time.Date(2021, 9, 10, 9, 0, 0, 0, time.UTC)
		ok, err := s.queries.CanRent(context.Background(), pv.ID, pickup, stop, 1)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("pickup exactly at the preparation cutoff is allowed", func() {
		s.clock.Set(time.Date(2021, 9, 10, 6, 30, 0, 0, time.UTC))
		pv := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.PreparationTime = 3
		}).BuildView()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), pv.ID).Return(pv, nil)
		s.mockInventory.EXPECT().Snapshot(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(queries.InventorySnapshot{OnHand: 5}, nil)
		s.mockReservations.EXPECT().ActiveByProducts(gomock.Any(), []uuid.UUID{pv.ID}).
			Return(nil, nil)

		pickup := time.Date(2021, 9, 10, 9, 30, 0, 0, time.UTC)
		ok, err := s.queries.CanRent(context.Background(), pv.ID, pickup, stop, 1)
		s.Require().NoError(err)
		s.True(ok)
	})
}
