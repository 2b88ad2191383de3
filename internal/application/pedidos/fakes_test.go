package pedidos_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

// memPedidos implementa repository.PedidoRepository en memoria.
type memPedidos struct {
	mu          sync.Mutex
	pedidos     map[string]*entity.Pedido
	items       map[string][]*entity.PedidoItem
	failItems   error
	searchCalls int
}

func newMemPedidos() *memPedidos {
	return &memPedidos{
		pedidos: map[string]*entity.Pedido{},
		items:   map[string][]*entity.PedidoItem{},
	}
}

func (m *memPedidos) Create(_ context.Context, p *entity.Pedido) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.pedidos[p.ID] = &cp
	return nil
}

func (m *memPedidos) CreateItems(_ context.Context, items []*entity.PedidoItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failItems != nil {
		return m.failItems
	}
	for _, it := range items {
		cp := *it
		m.items[it.PedidoID] = append(m.items[it.PedidoID], &cp)
	}
	return nil
}

func (m *memPedidos) GetByID(_ context.Context, lavanderiaID, id string) (*entity.Pedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pedidos[id]
	if !ok || p.LavanderiaID != lavanderiaID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPedidos) GetItems(_ context.Context, pedidoID string) ([]*entity.PedidoItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[pedidoID], nil
}

func (m *memPedidos) TransicionarEstado(_ context.Context, lavanderiaID, id, hacia string, at time.Time) (*entity.Pedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pedidos[id]
	if !ok || p.LavanderiaID != lavanderiaID {
		return nil, domain.ErrNotFound
	}
	if !pedido.PuedeTransicionar(p.Estado, hacia) {
		return nil, &domain.TransitionError{Desde: p.Estado, Hacia: hacia}
	}
	p.Estado = hacia
	p.UpdatedAt = at
	if (hacia == entity.EstadoListo || hacia == entity.EstadoEntregado) && p.ReadyAt == nil {
		t := at
		p.ReadyAt = &t
	}
	if hacia == entity.EstadoEntregado && p.DeliveredAt == nil {
		t := at
		p.DeliveredAt = &t
	}
	cp := *p
	return &cp, nil
}

func (m *memPedidos) Search(_ context.Context, f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	var out []*entity.Pedido
	for _, p := range m.pedidos {
		if p.LavanderiaID != f.LavanderiaID {
			continue
		}
		if f.Estado != "" && p.Estado != f.Estado {
			continue
		}
		if f.Despues != nil && !antes(p, f.Despues) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// antes informa si p va después del cursor en orden (created_at DESC, id DESC).
func antes(p *entity.Pedido, c *repository.Cursor) bool {
	if p.CreatedAt.Equal(c.CreatedAt) {
		return p.ID < c.ID
	}
	return p.CreatedAt.Before(c.CreatedAt)
}

// memServicios implementa repository.ServicioRepository.
type memServicios struct {
	servicios map[string]*entity.Servicio
	err       error
}

func (m *memServicios) GetByIDs(_ context.Context, lavanderiaID string, ids []string) (map[string]*entity.Servicio, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[string]*entity.Servicio{}
	for _, id := range ids {
		if s, ok := m.servicios[id]; ok && s.LavanderiaID == lavanderiaID {
			out[id] = s
		}
	}
	return out, nil
}

// memPerfiles implementa repository.PerfilRepository.
type memPerfiles struct {
	perfiles map[string]*entity.Perfil
}

func (m *memPerfiles) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Perfil, error) {
	out := map[string]*entity.Perfil{}
	for _, id := range ids {
		if p, ok := m.perfiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// memTx simula la transacción: si fn falla se restaura el estado previo.
type memTx struct {
	pedidos   *memPedidos
	servicios *memServicios
}

func (t *memTx) RunPedidos(ctx context.Context, fn func(repository.PedidoRepository, repository.ServicioRepository) error) error {
	t.pedidos.mu.Lock()
	snapPedidos := make(map[string]*entity.Pedido, len(t.pedidos.pedidos))
	for k, v := range t.pedidos.pedidos {
		snapPedidos[k] = v
	}
	snapItems := make(map[string][]*entity.PedidoItem, len(t.pedidos.items))
	for k, v := range t.pedidos.items {
		snapItems[k] = v
	}
	t.pedidos.mu.Unlock()

	if err := fn(t.pedidos, t.servicios); err != nil {
		t.pedidos.mu.Lock()
		t.pedidos.pedidos = snapPedidos
		t.pedidos.items = snapItems
		t.pedidos.mu.Unlock()
		return err
	}
	return nil
}

var errBoom = errors.New("boom")
