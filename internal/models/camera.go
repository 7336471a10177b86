package models

type Camera struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
