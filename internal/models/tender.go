package models

import "time"

type (
	TenderServiceType string // Тип услуги для тендера
	TenderStatus      string // Статус тендера
)

const (
	Construction TenderServiceType = "Construction"
	Delivery     TenderServiceType = "Delivery"
	Manufacture  TenderServiceType = "Manufacture"

	CreatedTender   TenderStatus = "Created"   // Тендер создан
	PublishedTender TenderStatus = "Published" // Тендер опубликован
	ClosedTender    TenderStatus = "Closed"    // Тендер закрыт
)

// ValidTenderServiceType проверяет, что тип услуги входит в допустимый набор.
func ValidTenderServiceType(t TenderServiceType) bool {
	switch t {
	case Construction, Delivery, Manufacture:
		return true
	default:
		return false
	}
}

// ValidTenderStatus проверяет, что статус тендера входит в допустимый набор.
func ValidTenderStatus(s TenderStatus) bool {
	switch s {
	case CreatedTender, PublishedTender, ClosedTender:
		return true
	default:
		return false
	}
}

// Tender представляет модель тендера.
type Tender struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Status          TenderStatus      `json:"status"`
	ServiceType     TenderServiceType `json:"serviceType"`
	OrganizationID  string            `json:"organizationId"`
	Version         int32             `json:"version"`
	CreatedAt       time.Time         `json:"createdAt"`
	CreatorUsername string            `json:"-"`
}

// TenderVersion представляет снимок контентных полей тендера для одной версии.
type TenderVersion struct {
	ID          string            `json:"id"`
	TenderID    string            `json:"tenderId"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ServiceType TenderServiceType `json:"serviceType"`
	Version     int32             `json:"version"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// TenderRequest представляет структуру запроса для создания тендера.
type TenderRequest struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	ServiceType     TenderServiceType `json:"serviceType"`
	Status          TenderStatus      `json:"status"`
	OrganizationID  string            `json:"organizationId"`
	CreatorUsername string            `json:"creatorUsername"`
}

// EditTenderRequest представляет структуру запроса для изменения тендера.
type EditTenderRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	ServiceType TenderServiceType `json:"serviceType"`
}
