// Package api serves the academic records store over HTTP with gin.
//
// Every entity is exposed as a resource with create, list, get, replace and
// delete routes. Filter routes hang off the parent resource
// (/groups/:id/students) and reports live under /reports, except the group
// schedule at /groups/:id/schedule. Bodies and responses are JSON; errors
// carry a "detail" message.
package api
