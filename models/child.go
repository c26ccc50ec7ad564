package models

// Location хранит только текущую точку устройства, без истории
type Location struct {
	Type      string  `json:"type"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type NotificationAccess struct {
	SystemUpdateService bool `json:"systemUpdateService"`
	SecureFolder        bool `json:"secureFolder"`
	SOSNotification     bool `json:"sosNotification"`
	Workspace           bool `json:"workspace"`
}

type DataAccess struct {
	Messages bool `json:"messages"`
	Contacts bool `json:"contacts"`
	CallLog  bool `json:"call_log"`
	Calendar bool `json:"calendar"`
	Location bool `json:"location"`
}

type Child struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	ParentID uint   `json:"parentId" gorm:"index;not null"` // не меняется после создания
	Name     string `json:"name"`
	Age      int    `json:"age"`

	Location Location `json:"location" gorm:"embedded;embeddedPrefix:location_"`

	ScanDeviceForSecurity   bool `json:"scanDeviceForSecurity"`
	ImproveHarmfulDetection bool `json:"improveHarmfulDetection"`
	SystemUpdateService     bool `json:"systemUpdateService"`
	AllowUsageTracking      bool `json:"allowUsageTracking"`

	NotificationAccess NotificationAccess `json:"notificationAccess" gorm:"embedded;embeddedPrefix:notification_access_"`

	AdministratorAccess bool `json:"administratorAccess"`

	DataAccess DataAccess `json:"dataAccess" gorm:"embedded;embeddedPrefix:data_access_"`

	BatteryOptimizationAllowed bool   `json:"batteryOptimizationAllowed"`
	DeviceName                 string `json:"deviceName"`
	DeviceToken                string `json:"device_token"`
}
