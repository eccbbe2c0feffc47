// Package apptest provides gomock implementations of the app interfaces.
//
// Regenerate with:
//
//	mockgen -destination=mock_app.go -package=apptest github.com/xy-planning-network/microapp/app App,Configurable,SupportingPageHandler,Starter,Server
package apptest
