// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers），
// 包括靜態端點和 WebSocket 連接的升級入口。
package api
