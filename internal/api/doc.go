// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package api provides the HTTP layer of AeroCam Hub.

Key Components:

  - Router: chi route table and middleware stack (SetupChi)
  - Handler: entity endpoints over the in-memory store, health probes and
    the websocket upgrade
  - Response helpers: bare JSON records on success and
    {"error": "...", "code": "..."} bodies on failure

Endpoints:

	POST   /api/aerocam/upsert          UpsertAeroCam
	GET    /api/aerocam/list            ListAeroCams
	GET    /api/aerocam/{id}            GetAeroCam
	POST   /api/request/create          CreateRequest
	GET    /api/request/list            ListRequests
	GET    /api/request/{id}            GetRequest
	POST   /api/request/{id}/accept     AcceptRequest
	GET    /api/position/list           ListPositions
	GET    /api/position/{clientKey}    GetPosition
	DELETE /api/position/{clientKey}    ClearPosition
	GET    /ws                          live connection (json or msgpack subprotocol)
	GET    /health/live, /health/ready  probes
	GET    /metrics                     Prometheus

Error mapping:

	models.ValidationError  400 VALIDATION_ERROR
	models.NotFoundError    404 NOT_FOUND
	models.ConflictError    400 CONFLICT
	malformed JSON body     400 INVALID_BODY

Example:

	handler := api.NewHandler(st, hub, relay, cfg)
	router := api.NewRouter(handler, cfg)
	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
*/
package api
