package models

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "cliente"
)

type User struct {
	ID           int64     `db:"id" json:"id_usuario"`
	Name         string    `db:"name" json:"nombre"`
	Email        string    `db:"email" json:"correo"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Phone        string    `db:"phone" json:"telefono"`
	Role         string    `db:"role" json:"rol"`
	CreatedAt    time.Time `db:"created_at" json:"fecha_creacion"`
}

type PaymentMethod struct {
	ID       int    `db:"id" json:"id_metodo_pago"`
	Name     string `db:"name" json:"nombre"`
	IsActive bool   `db:"active" json:"activo"`
}
