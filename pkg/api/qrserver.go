package api

// Wire-типы стороннего сервиса api.qrserver.com.
// Сервис не под нашим контролем, поэтому структуры повторяют его JSON как есть.

// ReadResult представляет один элемент ответа read-qr-code endpoint.
// Ответ сервиса — JSON массив таких элементов, по одному на распознанное изображение.
type ReadResult struct {
	Type   string   `json:"type"`   // тип найденного кода (обычно "qrcode")
	Symbol []Symbol `json:"symbol"` // распознанные символы внутри изображения
}

// Symbol представляет один распознанный (или нераспознанный) QR символ.
// При неудаче Data == nil и Error содержит текст ошибки сервиса.
type Symbol struct {
	Data  *string `json:"data"`  // декодированный текст, nil если QR не найден
	Error *string `json:"error"` // описание ошибки от сервиса, nil при успехе
	Seq   int     `json:"seq"`   // порядковый номер символа
}

// DecodedData возвращает текст первого символа первого результата.
// Отсутствие данных по этому пути означает "QR не найден", а не ошибку транспорта.
func DecodedData(results []ReadResult) (string, bool) {
	if len(results) == 0 || len(results[0].Symbol) == 0 {
		return "", false
	}
	data := results[0].Symbol[0].Data
	if data == nil || *data == "" {
		return "", false
	}
	return *data, true
}
