package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     *int64    // ID пользователя, nil для гостя без аккаунта
	HouseID    int64     // ID дома
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда (ночь выезда не оплачивается)
	Guests     int       // Количество гостей
	GuestName  string
	GuestEmail string
	GuestPhone string
	Notes      *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	HouseID    int64
	HouseName  string
	UserID     *int64
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Status     string
	GuestName  string
	GuestEmail string
	GuestPhone string
	Notes      *string
	Quote      domain.StayQuote
	CreatedAt  time.Time
}
