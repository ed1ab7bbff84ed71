package strapi

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("strapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Strapi
	ErrInvalidResponse = errors.New("strapi client: invalid response")
)
