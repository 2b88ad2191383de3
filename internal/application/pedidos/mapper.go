package pedidos

import (
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/shopspring/decimal"
)

// contacto datos del cliente ya resueltos (perfil registrado o cliente de mostrador).
type contacto struct {
	nombre   string
	telefono string
	email    string
}

// resolverContacto prefiere el perfil registrado y cae a las columnas de mostrador o a las
// notas heredadas.
func resolverContacto(p *entity.Pedido, perfiles map[string]*entity.Perfil) contacto {
	if p.ClienteID != "" {
		if perfil := perfiles[p.ClienteID]; perfil != nil {
			return contacto{nombre: perfil.Nombre, telefono: perfil.Telefono, email: perfil.Email}
		}
	}
	nombre, tel := pedido.ContactoMostrador(p)
	return contacto{nombre: nombre, telefono: tel}
}

func toPedidoResponse(p *entity.Pedido, c contacto) dto.PedidoResponse {
	_, _, notasLibres := pedido.ParsearNotasHeredadas(p.Notas)
	return dto.PedidoResponse{
		ID:              p.ID,
		LavanderiaID:    p.LavanderiaID,
		ClienteID:       p.ClienteID,
		ClienteNombre:   c.nombre,
		ClienteTelefono: c.telefono,
		Estado:          p.Estado,
		Siguientes:      pedido.Siguientes(p.Estado),
		Total:           p.Total,
		Notas:           p.Notas,
		NotasDisplay:    pedido.ComponerNotas(c.nombre, c.telefono, notasLibres),
		ReadyAt:         p.ReadyAt,
		DeliveredAt:     p.DeliveredAt,
		CreatedBy:       p.CreatedBy,
		CreatedByRole:   p.CreatedByRole,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toDetalleResponse(p *entity.Pedido, c contacto, items []*entity.PedidoItem, servicios map[string]*entity.Servicio) *dto.PedidoDetalleResponse {
	resp := &dto.PedidoDetalleResponse{
		PedidoResponse: toPedidoResponse(p, c),
		ClienteEmail:   c.email,
		Items:          make([]dto.PedidoItemResponse, 0, len(items)),
	}
	totalItems := decimal.Zero
	for _, it := range items {
		ir := dto.PedidoItemResponse{
			ID:             it.ID,
			ServicioID:     it.ServicioID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.Subtotal,
			Notas:          it.Notas,
		}
		if s, ok := servicios[it.ServicioID]; ok {
			ir.ServicioNombre = s.Nombre
			ir.Unidad = s.Unidad
		}
		resp.Items = append(resp.Items, ir)
		totalItems = totalItems.Add(it.Subtotal)
	}
	resp.TotalItems = totalItems
	resp.TotalConsistente = totalItems.Equal(p.Total)
	return resp
}

func servicioIDs(items []*entity.PedidoItem) []string {
	seen := make(map[string]struct{}, len(items))
	var ids []string
	for _, it := range items {
		if it.ServicioID == "" {
			continue
		}
		if _, ok := seen[it.ServicioID]; ok {
			continue
		}
		seen[it.ServicioID] = struct{}{}
		ids = append(ids, it.ServicioID)
	}
	return ids
}
