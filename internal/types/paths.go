package types

// AppPaths is the response payload for the GetAppPaths command. Field names
// match what the frontend expects over the bridge.
type AppPaths struct {
	AppData   string `json:"appData"`
	AppConfig string `json:"appConfig"`
}
