package greeting

import "errors"

const (
	// TimeLayout renders timestamps as dd-MM-yyyy HH:mm:ss.
	TimeLayout = "02-01-2006 15:04:05"

	DefaultName = "Dünya"

	IndexText = "Merhaba Sarp, uygulaman harika bir şekilde çalışıyor"

	StatusSuccess = "başarılı"
	StatusHealthy = "SAĞLIKLI"
	HealthMessage = "Uygulama normal çalışıyor"

	AppName        = "Spring Boot Baeldung Tutorial"
	AppVersion     = "1.0.0"
	AppDescription = "Baeldung rehberini takip ederek oluşturulan basit Spring Boot uygulaması"
)

var ErrEmptyName = errors.New("name must not be empty")

// Message is the payload of both /hello routes.
type Message struct {
	Message string `json:"mesaj"`
	Time    string `json:"zaman"`
	Status  string `json:"durum"`
}

type Info struct {
	Application string `json:"uygulama"`
	Version     string `json:"versiyon"`
	Description string `json:"aciklama"`
	// Runtime keeps the historical wire name but carries the Go runtime version.
	Runtime string `json:"java_versiyonu"`
	Time    string `json:"zaman"`
}

type Health struct {
	Status  string `json:"durum"`
	Message string `json:"mesaj"`
	Time    string `json:"zaman"`
}
