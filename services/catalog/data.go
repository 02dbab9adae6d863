package catalog

import "freevector_app_go/models"

// iconData is the bundled catalog in display order.
var iconData = []models.IconRecord{
	// UI & Controls
	{ID: "home", Name: "Home", DisplayName: "Home", Category: models.CategoryUIControls, Tags: []string{"house", "main", "start"}, Popular: true},
	{ID: "search", Name: "Search", DisplayName: "Search", Category: models.CategoryUIControls, Tags: []string{"find", "magnify", "look"}, Popular: true},
	{ID: "settings", Name: "Settings", DisplayName: "Settings", Category: models.CategoryUIControls, Tags: []string{"gear", "config", "options"}, Popular: true},
	{ID: "menu", Name: "Menu", DisplayName: "Menu", Category: models.CategoryUIControls, Tags: []string{"hamburger", "navigation", "bars"}},
	{ID: "bell", Name: "Bell", DisplayName: "Bell", Category: models.CategoryUIControls, Tags: []string{"notification", "alert", "ring"}},
	{ID: "plus", Name: "Plus", DisplayName: "Plus", Category: models.CategoryUIControls, Tags: []string{"add", "create", "new"}},
	{ID: "minus", Name: "Minus", DisplayName: "Minus", Category: models.CategoryUIControls, Tags: []string{"remove", "delete", "subtract"}},
	{ID: "x", Name: "X", DisplayName: "X", Category: models.CategoryUIControls, Tags: []string{"close", "cancel", "exit"}},

	// Files & Folders
	{ID: "file", Name: "File", DisplayName: "File", Category: models.CategoryFilesFolders, Tags: []string{"document", "paper", "doc"}},
	{ID: "folder", Name: "Folder", DisplayName: "Folder", Category: models.CategoryFilesFolders, Tags: []string{"directory", "storage", "organize"}},
	{ID: "download", Name: "Download", DisplayName: "Download", Category: models.CategoryFilesFolders, Tags: []string{"save", "import", "get"}, Popular: true},
	{ID: "upload", Name: "Upload", DisplayName: "Upload", Category: models.CategoryFilesFolders, Tags: []string{"send", "export", "share"}},
	{ID: "image", Name: "Image", DisplayName: "Image", Category: models.CategoryFilesFolders, Tags: []string{"photo", "picture", "media"}},
	{ID: "file-text", Name: "FileText", DisplayName: "Text File", Category: models.CategoryFilesFolders, Tags: []string{"document", "text", "write"}},

	// Communication
	{ID: "mail", Name: "Mail", DisplayName: "Mail", Category: models.CategoryCommunication, Tags: []string{"email", "message", "send"}, Popular: true},
	{ID: "phone", Name: "Phone", DisplayName: "Phone", Category: models.CategoryCommunication, Tags: []string{"call", "contact", "telephone"}},
	{ID: "message-circle", Name: "MessageCircle", DisplayName: "Message", Category: models.CategoryCommunication, Tags: []string{"chat", "talk", "bubble"}},
	{ID: "video", Name: "Video", DisplayName: "Video", Category: models.CategoryCommunication, Tags: []string{"camera", "record", "film"}},
	{ID: "headphones", Name: "Headphones", DisplayName: "Headphones", Category: models.CategoryCommunication, Tags: []string{"audio", "music", "sound"}},

	// Business
	{ID: "briefcase", Name: "Briefcase", DisplayName: "Briefcase", Category: models.CategoryBusiness, Tags: []string{"work", "job", "professional"}},
	{ID: "calendar", Name: "Calendar", DisplayName: "Calendar", Category: models.CategoryBusiness, Tags: []string{"date", "schedule", "time"}, Popular: true},
	{ID: "clock", Name: "Clock", DisplayName: "Clock", Category: models.CategoryBusiness, Tags: []string{"time", "watch", "schedule"}},
	{ID: "chart-bar", Name: "BarChart", DisplayName: "Bar Chart", Category: models.CategoryBusiness, Tags: []string{"analytics", "data", "graph"}},
	{ID: "pie-chart", Name: "PieChart", DisplayName: "Pie Chart", Category: models.CategoryBusiness, Tags: []string{"analytics", "data", "statistics"}},
	{ID: "target", Name: "Target", DisplayName: "Target", Category: models.CategoryBusiness, Tags: []string{"goal", "aim", "focus"}},

	// Social Media
	{ID: "heart", Name: "Heart", DisplayName: "Heart", Category: models.CategorySocialMedia, Tags: []string{"love", "like", "favorite"}, Popular: true},
	{ID: "star", Name: "Star", DisplayName: "Star", Category: models.CategorySocialMedia, Tags: []string{"favorite", "rating", "bookmark"}},
	{ID: "thumbs-up", Name: "ThumbsUp", DisplayName: "Thumbs Up", Category: models.CategorySocialMedia, Tags: []string{"like", "approve", "good"}},
	{ID: "share", Name: "Share", DisplayName: "Share", Category: models.CategorySocialMedia, Tags: []string{"send", "forward", "distribute"}},
	{ID: "users", Name: "Users", DisplayName: "Users", Category: models.CategorySocialMedia, Tags: []string{"people", "group", "team"}},
	{ID: "user", Name: "User", DisplayName: "User", Category: models.CategorySocialMedia, Tags: []string{"person", "profile", "account"}, Popular: true},

	// Weather
	{ID: "sun", Name: "Sun", DisplayName: "Sun", Category: models.CategoryWeather, Tags: []string{"sunny", "bright", "day"}},
	{ID: "moon", Name: "Moon", DisplayName: "Moon", Category: models.CategoryWeather, Tags: []string{"night", "dark", "crescent"}},
	{ID: "cloud", Name: "Cloud", DisplayName: "Cloud", Category: models.CategoryWeather, Tags: []string{"cloudy", "sky", "weather"}},
	{ID: "cloud-rain", Name: "CloudRain", DisplayName: "Rain", Category: models.CategoryWeather, Tags: []string{"rainy", "storm", "precipitation"}},
	{ID: "snowflake", Name: "Snowflake", DisplayName: "Snow", Category: models.CategoryWeather, Tags: []string{"winter", "cold", "ice"}},
	{ID: "zap", Name: "Zap", DisplayName: "Lightning", Category: models.CategoryWeather, Tags: []string{"thunder", "storm", "electric"}},

	// E-commerce
	{ID: "shopping-cart", Name: "ShoppingCart", DisplayName: "Shopping Cart", Category: models.CategoryEcommerce, Tags: []string{"buy", "purchase", "store"}, Popular: true},
	{ID: "credit-card", Name: "CreditCard", DisplayName: "Credit Card", Category: models.CategoryEcommerce, Tags: []string{"payment", "money", "finance"}},
	{ID: "package", Name: "Package", DisplayName: "Package", Category: models.CategoryEcommerce, Tags: []string{"box", "delivery", "shipping"}},
	{ID: "truck", Name: "Truck", DisplayName: "Truck", Category: models.CategoryEcommerce, Tags: []string{"delivery", "shipping", "transport"}},
	{ID: "tag", Name: "Tag", DisplayName: "Tag", Category: models.CategoryEcommerce, Tags: []string{"price", "label", "category"}},
	{ID: "dollar-sign", Name: "DollarSign", DisplayName: "Dollar", Category: models.CategoryEcommerce, Tags: []string{"money", "price", "cost"}},

	// Travel
	{ID: "map-pin", Name: "MapPin", DisplayName: "Map Pin", Category: models.CategoryTravel, Tags: []string{"location", "place", "marker"}},
	{ID: "map", Name: "Map", DisplayName: "Map", Category: models.CategoryTravel, Tags: []string{"navigation", "route", "geography"}},
	{ID: "plane", Name: "Plane", DisplayName: "Airplane", Category: models.CategoryTravel, Tags: []string{"flight", "travel", "aviation"}},
	{ID: "car", Name: "Car", DisplayName: "Car", Category: models.CategoryTravel, Tags: []string{"vehicle", "drive", "transport"}},
	{ID: "compass", Name: "Compass", DisplayName: "Compass", Category: models.CategoryTravel, Tags: []string{"direction", "navigation", "explore"}},
	{ID: "globe", Name: "Globe", DisplayName: "Globe", Category: models.CategoryTravel, Tags: []string{"world", "earth", "international"}},

	// Technology
	{ID: "smartphone", Name: "Smartphone", DisplayName: "Smartphone", Category: models.CategoryTechnology, Tags: []string{"mobile", "phone", "device"}},
	{ID: "laptop", Name: "Laptop", DisplayName: "Laptop", Category: models.CategoryTechnology, Tags: []string{"computer", "device", "work"}},
	{ID: "wifi", Name: "Wifi", DisplayName: "WiFi", Category: models.CategoryTechnology, Tags: []string{"internet", "connection", "wireless"}},
	{ID: "battery", Name: "Battery", DisplayName: "Battery", Category: models.CategoryTechnology, Tags: []string{"power", "energy", "charge"}},
	{ID: "cpu", Name: "Cpu", DisplayName: "CPU", Category: models.CategoryTechnology, Tags: []string{"processor", "computer", "chip"}},
	{ID: "database", Name: "Database", DisplayName: "Database", Category: models.CategoryTechnology, Tags: []string{"storage", "data", "server"}},

	// Media
	{ID: "camera", Name: "Camera", DisplayName: "Camera", Category: models.CategoryMedia, Tags: []string{"photo", "picture", "capture"}, Popular: true},
	{ID: "music", Name: "Music", DisplayName: "Music", Category: models.CategoryMedia, Tags: []string{"song", "audio", "sound"}},
	{ID: "play", Name: "Play", DisplayName: "Play", Category: models.CategoryMedia, Tags: []string{"start", "video", "media"}},
	{ID: "pause", Name: "Pause", DisplayName: "Pause", Category: models.CategoryMedia, Tags: []string{"stop", "break", "hold"}},
	{ID: "volume-2", Name: "Volume2", DisplayName: "Volume", Category: models.CategoryMedia, Tags: []string{"sound", "audio", "speaker"}},
	{ID: "mic", Name: "Mic", DisplayName: "Microphone", Category: models.CategoryMedia, Tags: []string{"record", "voice", "sound"}},

	// Navigation
	{ID: "arrow-left", Name: "ArrowLeft", DisplayName: "Arrow Left", Category: models.CategoryNavigation, Tags: []string{"back", "previous", "return"}},
	{ID: "arrow-right", Name: "ArrowRight", DisplayName: "Arrow Right", Category: models.CategoryNavigation, Tags: []string{"forward", "next", "continue"}},
	{ID: "arrow-up", Name: "ArrowUp", DisplayName: "Arrow Up", Category: models.CategoryNavigation, Tags: []string{"top", "ascend", "increase"}},
	{ID: "arrow-down", Name: "ArrowDown", DisplayName: "Arrow Down", Category: models.CategoryNavigation, Tags: []string{"bottom", "descend", "decrease"}},
	{ID: "chevron-left", Name: "ChevronLeft", DisplayName: "Chevron Left", Category: models.CategoryNavigation, Tags: []string{"back", "previous", "left"}},
	{ID: "chevron-right", Name: "ChevronRight", DisplayName: "Chevron Right", Category: models.CategoryNavigation, Tags: []string{"forward", "next", "right"}},

	// Health
	{ID: "activity", Name: "Activity", DisplayName: "Activity", Category: models.CategoryHealth, Tags: []string{"health", "fitness", "pulse"}},
	{ID: "thermometer", Name: "Thermometer", DisplayName: "Thermometer", Category: models.CategoryHealth, Tags: []string{"temperature", "fever", "health"}},
	{ID: "shield", Name: "Shield", DisplayName: "Shield", Category: models.CategoryHealth, Tags: []string{"protection", "security", "safety"}},
	{ID: "cross", Name: "Cross", DisplayName: "Cross", Category: models.CategoryHealth, Tags: []string{"medical", "hospital", "health"}},

	// Gaming
	{ID: "gamepad-2", Name: "Gamepad2", DisplayName: "Gamepad", Category: models.CategoryGaming, Tags: []string{"controller", "game", "play"}},
	{ID: "trophy", Name: "Trophy", DisplayName: "Trophy", Category: models.CategoryGaming, Tags: []string{"award", "win", "achievement"}},
	{ID: "dice-1", Name: "Dice1", DisplayName: "Dice", Category: models.CategoryGaming, Tags: []string{"game", "random", "chance"}},
	{ID: "swords", Name: "Swords", DisplayName: "Swords", Category: models.CategoryGaming, Tags: []string{"battle", "fight", "combat"}},
}
