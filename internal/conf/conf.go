package conf

type Bootstrap struct {
	Server *Server
	Data   *Data
	Auth   *Auth
	Dart   *Dart
}

type Auth struct {
	JwtKey string
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Data struct {
	Database *Database
}

type Database struct {
	Driver string
	Source string
}

type Dart struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Timeout int32  `json:"timeout"`
	Qps     int32  `json:"qps"`
	Rpm     int32  `json:"rpm"`
}
