//go:build integration

package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/Lavanderia-api/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PedidoRepoSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool

	lavanderiaID string
	servicioID   string
}

func TestPedidoRepoSuite(t *testing.T) {
	suite.Run(t, new(PedidoRepoSuite))
}

func (s *PedidoRepoSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("lavanderia"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(MigrateUp(dsn))

	pool, err := NewPool(s.ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 5})
	s.Require().NoError(err)
	s.pool = pool
}

func (s *PedidoRepoSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *PedidoRepoSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE pedido_items, pedidos, servicios, perfiles, usuario_roles CASCADE`)
	s.Require().NoError(err)

	s.lavanderiaID = uuid.NewString()
	s.servicioID = uuid.NewString()
	_, err = s.pool.Exec(s.ctx,
		`INSERT INTO servicios (id, lavanderia_id, nombre, precio, unidad) VALUES ($1, $2, 'Lavado por kilo', 25, 'kg')`,
		s.servicioID, s.lavanderiaID)
	s.Require().NoError(err)
}

func (s *PedidoRepoSuite) nuevoPedido(estado string, creado time.Time) *entity.Pedido {
	p := &entity.Pedido{
		ID:            uuid.NewString(),
		LavanderiaID:  s.lavanderiaID,
		Estado:        estado,
		Total:         decimal.NewFromInt(50),
		ClienteNombre: "Juan Pérez",
		CreatedAt:     creado,
		UpdatedAt:     creado,
	}
	s.Require().NoError(NewPedidoRepository(s.pool).Create(s.ctx, p))
	return p
}

func (s *PedidoRepoSuite) TestCreateAndGet() {
	repo := NewPedidoRepository(s.pool)
	p := s.nuevoPedido(entity.EstadoCreado, time.Now().UTC().Truncate(time.Microsecond))

	items := []*entity.PedidoItem{{
		PedidoID:       p.ID,
		ServicioID:     s.servicioID,
		Cantidad:       2,
		PrecioUnitario: decimal.NewFromInt(25),
		Subtotal:       decimal.NewFromInt(50),
	}}
	s.Require().NoError(repo.CreateItems(s.ctx, items))

	got, err := repo.GetByID(s.ctx, s.lavanderiaID, p.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	assert.Equal(s.T(), "Juan Pérez", got.ClienteNombre)
	assert.True(s.T(), got.Total.Equal(decimal.NewFromInt(50)))
	assert.Empty(s.T(), got.ClienteID)

	gotItems, err := repo.GetItems(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(gotItems, 1)
	assert.Equal(s.T(), s.servicioID, gotItems[0].ServicioID)
	assert.True(s.T(), gotItems[0].Subtotal.Equal(decimal.NewFromInt(50)))

	otra, err := repo.GetByID(s.ctx, uuid.NewString(), p.ID)
	s.Require().NoError(err)
	assert.Nil(s.T(), otra)

	invalido, err := repo.GetByID(s.ctx, s.lavanderiaID, "no-es-uuid")
	s.Require().NoError(err)
	assert.Nil(s.T(), invalido)
}

func (s *PedidoRepoSuite) TestTransicionarEstado() {
	repo := NewPedidoRepository(s.pool)
	p := s.nuevoPedido(entity.EstadoCreado, time.Now().UTC())
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	listo, err := repo.TransicionarEstado(s.ctx, s.lavanderiaID, p.ID, entity.EstadoListo, at)
	s.Require().NoError(err)
	assert.Equal(s.T(), entity.EstadoListo, listo.Estado)
	s.Require().NotNil(listo.ReadyAt)
	assert.True(s.T(), listo.ReadyAt.Equal(at))
	assert.Nil(s.T(), listo.DeliveredAt)

	entregado, err := repo.TransicionarEstado(s.ctx, s.lavanderiaID, p.ID, entity.EstadoEntregado, at.Add(time.Hour))
	s.Require().NoError(err)
	s.Require().NotNil(entregado.DeliveredAt)
	assert.True(s.T(), entregado.ReadyAt.Equal(at), "ready_at no se sobrescribe")
	assert.True(s.T(), entregado.DeliveredAt.Equal(at.Add(time.Hour)))

	_, err = repo.TransicionarEstado(s.ctx, s.lavanderiaID, p.ID, entity.EstadoEnProceso, at)
	var te *domain.TransitionError
	s.Require().True(errors.As(err, &te))
	assert.Equal(s.T(), entity.EstadoEntregado, te.Desde)
	assert.ErrorIs(s.T(), err, domain.ErrInvalidTransition)
}

func (s *PedidoRepoSuite) TestTransicionarEstado_EntregaInmediata() {
	repo := NewPedidoRepository(s.pool)
	p := s.nuevoPedido(entity.EstadoCreado, time.Now().UTC())
	at := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	got, err := repo.TransicionarEstado(s.ctx, s.lavanderiaID, p.ID, entity.EstadoEntregado, at)
	s.Require().NoError(err)
	s.Require().NotNil(got.ReadyAt)
	s.Require().NotNil(got.DeliveredAt)
	assert.True(s.T(), got.ReadyAt.Equal(at))
	assert.True(s.T(), got.DeliveredAt.Equal(at))
}

func (s *PedidoRepoSuite) TestTransicionarEstado_Errores() {
	repo := NewPedidoRepository(s.pool)
	p := s.nuevoPedido(entity.EstadoCreado, time.Now().UTC())

	_, err := repo.TransicionarEstado(s.ctx, s.lavanderiaID, p.ID, entity.EstadoCancelado, time.Now())
	assert.ErrorIs(s.T(), err, domain.ErrInvalidTransition)

	_, err = repo.TransicionarEstado(s.ctx, s.lavanderiaID, uuid.NewString(), entity.EstadoListo, time.Now())
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	_, err = repo.TransicionarEstado(s.ctx, uuid.NewString(), p.ID, entity.EstadoListo, time.Now())
	assert.ErrorIs(s.T(), err, domain.ErrNotFound, "otra lavandería no ve el pedido")

	_, err = repo.TransicionarEstado(s.ctx, s.lavanderiaID, p.ID, "perdido", time.Now())
	assert.ErrorIs(s.T(), err, domain.ErrValidation)
}

func (s *PedidoRepoSuite) TestTriggerRechazaUpdateDirecto() {
	p := s.nuevoPedido(entity.EstadoListo, time.Now().UTC())

	_, err := s.pool.Exec(s.ctx, `UPDATE pedidos SET estado = 'creado' WHERE id = $1`, p.ID)
	s.Require().Error(err)
	assert.True(s.T(), isTransitionViolation(err))

	// Tras un rechazo del trigger el error informa el estado de origen real.
	err = NewPedidoRepository(s.pool).transicionRechazada(s.ctx, s.lavanderiaID, p.ID, entity.EstadoCreado)
	var te *domain.TransitionError
	s.Require().True(errors.As(err, &te))
	assert.Equal(s.T(), entity.EstadoListo, te.Desde)
	assert.Equal(s.T(), entity.EstadoCreado, te.Hacia)
	assert.NotContains(s.T(), err.Error(), ": ->")
}

func (s *PedidoRepoSuite) TestSearch_FiltroYCursor() {
	repo := NewPedidoRepository(s.pool)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var creados []*entity.Pedido
	for i := 0; i < 5; i++ {
		creados = append(creados, s.nuevoPedido(entity.EstadoCreado, base.Add(time.Duration(i)*time.Minute)))
	}
	s.nuevoPedido(entity.EstadoListo, base.Add(10*time.Minute))

	primera, err := repo.Search(s.ctx, repository.PedidoFiltro{
		LavanderiaID: s.lavanderiaID,
		Estado:       entity.EstadoCreado,
		Limit:        3,
	})
	s.Require().NoError(err)
	s.Require().Len(primera, 3)
	assert.Equal(s.T(), creados[4].ID, primera[0].ID)
	assert.Equal(s.T(), creados[2].ID, primera[2].ID)

	ultimo := primera[2]
	segunda, err := repo.Search(s.ctx, repository.PedidoFiltro{
		LavanderiaID: s.lavanderiaID,
		Estado:       entity.EstadoCreado,
		Despues:      &repository.Cursor{CreatedAt: ultimo.CreatedAt, ID: ultimo.ID},
		Limit:        3,
	})
	s.Require().NoError(err)
	s.Require().Len(segunda, 2)
	assert.Equal(s.T(), creados[1].ID, segunda[0].ID)
	assert.Equal(s.T(), creados[0].ID, segunda[1].ID)

	todos, err := repo.Search(s.ctx, repository.PedidoFiltro{LavanderiaID: s.lavanderiaID})
	s.Require().NoError(err)
	assert.Len(s.T(), todos, 6)

	ajena, err := repo.Search(s.ctx, repository.PedidoFiltro{LavanderiaID: uuid.NewString()})
	s.Require().NoError(err)
	assert.Empty(s.T(), ajena)
}

func (s *PedidoRepoSuite) TestListResumen_ExcluyeCancelados() {
	now := time.Now().UTC()
	s.nuevoPedido(entity.EstadoCreado, now)
	s.nuevoPedido(entity.EstadoEntregado, now)
	s.nuevoPedido(entity.EstadoCancelado, now)

	rows, err := NewAnalyticsRepository(s.pool).ListResumen(s.ctx, s.lavanderiaID)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	for _, r := range rows {
		assert.NotEqual(s.T(), entity.EstadoCancelado, r.Estado)
		assert.True(s.T(), r.Total.Equal(decimal.NewFromInt(50)))
	}
}

func (s *PedidoRepoSuite) TestServicioRepo_GetByIDs() {
	got, err := NewServicioRepository(s.pool).GetByIDs(s.ctx, s.lavanderiaID, []string{s.servicioID, uuid.NewString()})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	assert.Equal(s.T(), "Lavado por kilo", got[s.servicioID].Nombre)
	assert.True(s.T(), got[s.servicioID].Precio.Equal(decimal.NewFromInt(25)))

	ajeno, err := NewServicioRepository(s.pool).GetByIDs(s.ctx, uuid.NewString(), []string{s.servicioID})
	s.Require().NoError(err)
	assert.Empty(s.T(), ajeno)
}

func (s *PedidoRepoSuite) TestTxRunner_RollbackSinItems() {
	runner := NewTxRunner(s.pool)
	pedidoID := uuid.NewString()
	boom := errors.New("items fallaron")

	err := runner.RunPedidos(s.ctx, func(pedidoRepo repository.PedidoRepository, _ repository.ServicioRepository) error {
		now := time.Now().UTC()
		if err := pedidoRepo.Create(s.ctx, &entity.Pedido{
			ID:           pedidoID,
			LavanderiaID: s.lavanderiaID,
			Estado:       entity.EstadoCreado,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(s.T(), err, boom)

	got, err := NewPedidoRepository(s.pool).GetByID(s.ctx, s.lavanderiaID, pedidoID)
	s.Require().NoError(err)
	assert.Nil(s.T(), got, "la cabecera no queda huérfana")
}
