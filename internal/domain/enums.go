package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)
