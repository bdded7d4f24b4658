package domain

import "time"

// SystemSettings is the singleton store configuration edited on the
// settings page.
type SystemSettings struct {
	General       GeneralSettings      `json:"general"`
	Payments      PaymentSettings      `json:"payments"`
	Shipping      ShippingSettings     `json:"shipping"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Maintenance   MaintenanceSettings  `json:"maintenance"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type GeneralSettings struct {
	StoreName    string `json:"storeName"`
	SupportEmail string `json:"supportEmail"`
	Currency     string `json:"currency"`
	Timezone     string `json:"timezone"`
	Language     string `json:"language"`
	Theme        string `json:"theme"`
}

type PaymentSettings struct {
	Methods  []PaymentMethod `json:"methods"`
	TestMode bool            `json:"testMode"`
	Gateway  string          `json:"gateway"`
}

type ShippingSettings struct {
	FreeShippingThreshold int64    `json:"freeShippingThreshold"`
	DefaultCarrier        string   `json:"defaultCarrier"`
	Zones                 []string `json:"zones"`
}

type NotificationSettings struct {
	OrderEmails    bool  `json:"orderEmails"`
	LowStockAlerts bool  `json:"lowStockAlerts"`
	LowStockLevel  int64 `json:"lowStockLevel"`
	WeeklyReport   bool  `json:"weeklyReport"`
}

type SecuritySettings struct {
	TwoFactorRequired     bool `json:"twoFactorRequired"`
	SessionTimeoutMinutes int  `json:"sessionTimeoutMinutes"`
	PasswordMinLength     int  `json:"passwordMinLength"`
}

type MaintenanceSettings struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message,omitempty"`
}

// DefaultSettings returns the factory configuration.
func DefaultSettings() SystemSettings {
	return SystemSettings{
		General: GeneralSettings{
			StoreName:    "Mesa Store",
			SupportEmail: "support@example.com",
			Currency:     "USD",
			Timezone:     "UTC",
			Language:     "en",
			Theme:        "light",
		},
		Payments: PaymentSettings{
			Methods: []PaymentMethod{MethodCreditCard, MethodPayPal, MethodBankTransfer},
			Gateway: "stripe",
		},
		Shipping: ShippingSettings{
			FreeShippingThreshold: 5000,
			DefaultCarrier:        "UPS",
			Zones:                 []string{"domestic", "international"},
		},
		Notifications: NotificationSettings{
			OrderEmails:    true,
			LowStockAlerts: true,
			LowStockLevel:  10,
		},
		Security: SecuritySettings{
			SessionTimeoutMinutes: 60,
			PasswordMinLength:     8,
		},
	}
}
