package models

import "time"

type RepairStatus string

const (
	RepairStatusReceived  RepairStatus = "recibido"
	RepairStatusDiagnosis RepairStatus = "diagnostico"
	RepairStatusRepairing RepairStatus = "reparando"
	RepairStatusReady     RepairStatus = "listo"
	RepairStatusDelivered RepairStatus = "entregado"
	RepairStatusCancelled RepairStatus = "cancelado"
)

func ValidRepairStatus(s RepairStatus) bool {
	switch s {
	case RepairStatusReceived, RepairStatusDiagnosis, RepairStatusRepairing,
		RepairStatusReady, RepairStatusDelivered, RepairStatusCancelled:
		return true
	}
	return false
}

type RepairRequest struct {
	ID           int          `db:"id" json:"id_reparacion"`
	TrackingCode string       `db:"tracking_code" json:"codigo_seguimiento"`
	CustomerName string       `db:"customer_name" json:"nombre_cliente"`
	Email        string       `db:"email" json:"correo"`
	Phone        string       `db:"phone" json:"telefono"`
	Device       string       `db:"device" json:"equipo"`
	Issue        string       `db:"issue_description" json:"descripcion_problema"`
	Status       RepairStatus `db:"status" json:"estado"`
	CreatedAt    time.Time    `db:"created_at" json:"fecha_creacion"`
	UpdatedAt    time.Time    `db:"updated_at" json:"fecha_actualizacion"`
}
