package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Ошибки валидации полей формы (presence checks)
var (
	// ErrEmptySSID пустое имя WiFi сети
	ErrEmptySSID = errors.New("wifi network name (SSID) is required")

	// ErrEmptyRecipient пустой адрес получателя email
	ErrEmptyRecipient = errors.New("email address is required")

	// ErrEmptyData пустые данные для кодирования
	ErrEmptyData = errors.New("data to encode is required")
)

// BuildWifiPayload строит WiFi payload в формате, который понимают сканеры:
// WIFI:S:<ssid>;T:<WPA|WEP|nopass>;P:<password>;;
// Часть P: опускается если пароль пустой.
func BuildWifiPayload(ssid, password, encryption string) (string, error) {
	if strings.TrimSpace(ssid) == "" {
		return "", ErrEmptySSID
	}

	passwordPart := ""
	if password != "" {
		passwordPart = fmt.Sprintf("P:%s;", password)
	}

	return fmt.Sprintf("WIFI:S:%s;T:%s;%s;", ssid, encryption, passwordPart), nil
}

// BuildEmailPayload строит mailto payload:
// mailto:<addr>?subject=<enc>&body=<enc>
// Пустые subject/body опускаются вместе с разделителями.
func BuildEmailPayload(to, subject, body string) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return "", ErrEmptyRecipient
	}

	payload := "mailto:" + to

	var params []string
	if s := strings.TrimSpace(subject); s != "" {
		params = append(params, "subject="+url.QueryEscape(s))
	}
	if b := strings.TrimSpace(body); b != "" {
		params = append(params, "body="+url.QueryEscape(b))
	}

	if len(params) > 0 {
		payload += "?" + strings.Join(params, "&")
	}

	return payload, nil
}

// BuildTextPayload пропускает текст/ссылку как есть после presence check
func BuildTextPayload(data string) (string, error) {
	if strings.TrimSpace(data) == "" {
		return "", ErrEmptyData
	}
	return data, nil
}
