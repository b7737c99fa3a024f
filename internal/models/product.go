package models

import "time"

type Product struct {
	ID          int       `db:"id" json:"id_producto"`
	Name        string    `db:"name" json:"nombre"`
	Description string    `db:"description" json:"descripcion"`
	Price       float64   `db:"unit_price" json:"precio"`
	Stock       int       `db:"stock" json:"stock"`
	CategoryID  int       `db:"category_id" json:"id_categoria"`
	ImageURL    string    `db:"image_url" json:"imagen_url"`
	IsActive    bool      `db:"active" json:"activo"`
	CreatedAt   time.Time `db:"created_at" json:"fecha_creacion"`
}

type Category struct {
	ID          int       `db:"id" json:"id_categoria"`
	Name        string    `db:"name" json:"nombre"`
	Description string    `db:"description" json:"descripcion"`
	IsActive    bool      `db:"active" json:"activo"`
	CreatedAt   time.Time `db:"created_at" json:"fecha_creacion"`
}
