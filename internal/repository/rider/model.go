package rider

import "time"

type ApplicationDB struct {
	ID         int64
	Name       string
	Email      string
	Age        int
	Phone      string
	NationalID string
	Region     string
	District   string
	Address    string
	BikeBrand  string
	BikeNumber string
	Status     string
	CreatedAt  time.Time
}

type ApplicationModifyDB struct {
	ID         *int64
	Name       *string
	Email      *string
	Age        *int
	Phone      *string
	NationalID *string
	Region     *string
	District   *string
	Address    *string
	BikeBrand  *string
	BikeNumber *string
	Status     *string
}
