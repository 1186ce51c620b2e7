// ratelimit реализует ограничение частоты запросов по скользящему окну.
//
// Ключ — пара (IP источника, маршрут); семантика окна — трейлинг-интервал,
// а не календарная корзина: всплеск, пересекающий границу корзины, всё
// равно ограничивается. О смысле маршрутов лимитер ничего не знает.
package ratelimit

import "context"

// Limiter — контракт ограничителя частоты запросов.
type Limiter interface {
	// Allow регистрирует запрос и сообщает, укладывается ли он в бюджет
	// окна для ключа (ip, route).
	Allow(ctx context.Context, ip, route string) (bool, error)
}
