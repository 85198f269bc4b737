package design

import (
	. "goa.design/goa/v3/dsl"
)

// API definition
var _ = API("vigil", func() {
	Title("Vigil Weapon Detection System")
	Description("Real-time multi-camera weapon detection with incident tracking and alerting")
	Version("1.0")
	Server("vigil", func() {
		Host("localhost", func() {
			URI("http://localhost:8080")
		})
		Host("production", func() {
			URI("https://vigil.example.com")
		})
	})
})

// Error types
var NotFoundError = Type("NotFoundError", func() {
	Description("Resource not found error")
	Field(1, "message", String, "Error message")
	Field(2, "id", String, "Resource ID")
	Required("message", "id")
})

var BadRequestError = Type("BadRequestError", func() {
	Description("Bad request error")
	Field(1, "message", String, "Error message")
	Field(2, "details", String, "Error details")
	Required("message")
})

var InternalError = Type("InternalError", func() {
	Description("Internal server error")
	Field(1, "message", String, "Error message")
	Required("message")
})

var NotReadyError = Type("NotReadyError", func() {
	Description("Service is not ready to serve traffic")
	Field(1, "message", String, "Error message")
	Field(2, "details", String, "Additional error details")
	Required("message")
})

// Data types
var CameraInfo = Type("CameraInfo", func() {
	Description("Camera registration and live status")
	Field(1, "id", String, "Camera unique identifier")
	Field(2, "name", String, "Camera display name")
	Field(3, "location", String, "Physical location")
	Field(4, "source", String, "Stream URL or looped file path")
	Field(5, "capture_fps", Int, "Capture frame rate")
	Field(6, "detect_fps", Int, "Detection frame rate")
	Field(7, "priority", Int, "Queue priority class (1=high, 2=normal, 3=low)")
	Field(8, "status", String, "Camera status", func() {
		Enum("online", "offline", "reconnecting", "failed")
	})
	Field(9, "created_at", String, "Registration timestamp", func() {
		Format(FormatDateTime)
	})
	Required("id", "name", "source", "status")
})

var CameraCounters = Type("CameraCounters", func() {
	Description("Per-camera pipeline counters")
	Field(1, "camera_id", String, "Camera ID")
	Field(2, "frames_captured", Int64, "Frames read from the source")
	Field(3, "frames_skipped", Int64, "Frames dropped by the skip interval")
	Field(4, "motion_skips", Int64, "Frames skipped by the motion gate")
	Field(5, "hash_skips", Int64, "Frames skipped as duplicates")
	Field(6, "frames_enqueued", Int64, "Frames handed to the detection queue")
	Field(7, "frames_dropped", Int64, "Frames dropped by a full queue")
	Field(8, "detections_total", Int64, "Detections produced")
	Field(9, "avg_detect_ms", Float64, "Rolling mean detection latency")
	Field(10, "loops", Int64, "Looped file restarts")
	Field(11, "status", String, "Camera status")
	Required("camera_id", "frames_captured", "frames_skipped", "motion_skips",
		"hash_skips", "frames_enqueued", "frames_dropped", "detections_total",
		"avg_detect_ms", "loops", "status")
})

var BoundingBox = Type("BoundingBox", func() {
	Description("Detection box in source-frame pixel coordinates")
	Field(1, "x1", Float64, "Left")
	Field(2, "y1", Float64, "Top")
	Field(3, "x2", Float64, "Right")
	Field(4, "y2", Float64, "Bottom")
	Required("x1", "y1", "x2", "y2")
})

var Alert = Type("Alert", func() {
	Description("One persisted detection event under an incident")
	Field(1, "id", String, "Alert unique identifier")
	Field(2, "weapon_type", String, "Detected weapon class")
	Field(3, "confidence", Float64, "Detection confidence (0-1)")
	Field(4, "severity", String, "Severity tier")
	Field(5, "snapshot", String, "Snapshot object reference")
	Field(6, "bbox", BoundingBox, "Detection box")
	Field(7, "status", String, "Alert status", func() {
		Enum("new", "under_review", "confirmed", "false_alarm")
	})
	Field(8, "timestamp", String, "Detection timestamp", func() {
		Format(FormatDateTime)
	})
	Required("id", "weapon_type", "confidence", "status", "timestamp")
})

var Incident = Type("Incident", func() {
	Description("Grouped detection incident")
	Field(1, "id", String, "Incident unique identifier")
	Field(2, "camera_id", String, "Camera ID")
	Field(3, "camera_name", String, "Camera display name")
	Field(4, "location", String, "Camera location")
	Field(5, "weapon_type", String, "Primary weapon class")
	Field(6, "severity", String, "Severity tier")
	Field(7, "max_confidence", Float64, "Highest detection confidence")
	Field(8, "avg_confidence", Float64, "Mean detection confidence")
	Field(9, "detection_count", Int, "Detections folded into the incident")
	Field(10, "alert_count", Int, "Alerts emitted for the incident")
	Field(11, "best_snapshot", String, "Snapshot of the strongest detection")
	Field(12, "started_at", String, "First detection timestamp", func() {
		Format(FormatDateTime)
	})
	Field(13, "last_detection_at", String, "Most recent detection timestamp", func() {
		Format(FormatDateTime)
	})
	Field(14, "ended_at", String, "Close timestamp", func() {
		Format(FormatDateTime)
	})
	Field(15, "status", String, "Incident status", func() {
		Enum("active", "closed", "reviewed", "confirmed", "false_alarm")
	})
	Field(16, "reviewed_by", String, "Reviewer identity")
	Field(17, "reviewed_at", String, "Review timestamp", func() {
		Format(FormatDateTime)
	})
	Field(18, "notes", String, "Review notes")
	Required("id", "camera_id", "camera_name", "weapon_type", "max_confidence",
		"avg_confidence", "detection_count", "alert_count", "started_at",
		"last_detection_at", "status")
})

var IncidentDetail = Type("IncidentDetail", func() {
	Description("Incident with its alert history")
	Field(1, "incident", Incident, "The incident")
	Field(2, "alerts", ArrayOf(Alert), "Alerts, newest first")
	Required("incident", "alerts")
})

var IncidentPage = Type("IncidentPage", func() {
	Description("One page of incidents")
	Field(1, "items", ArrayOf(Incident), "Incidents on this page")
	Field(2, "total", Int, "Total matching incidents")
	Field(3, "page", Int, "Page number")
	Field(4, "page_size", Int, "Page size")
	Required("items", "total", "page", "page_size")
})

var IncidentCounters = Type("IncidentCounters", func() {
	Description("Aggregate incident counters")
	Field(1, "total", Int, "All incidents")
	Field(2, "active", Int, "Currently active incidents")
	Field(3, "by_status", MapOf(String, Int), "Incident count per status")
	Field(4, "by_camera", MapOf(String, Int), "Incident count per camera")
	Required("total", "active", "by_status", "by_camera")
})

var QueueCounters = Type("QueueCounters", func() {
	Description("Shared detection queue counters")
	Field(1, "depth", Int, "Tasks currently queued")
	Field(2, "capacity", Int, "Queue capacity")
	Field(3, "pushed", Int64, "Tasks accepted")
	Field(4, "popped", Int64, "Tasks handed to workers")
	Field(5, "dropped", Int64, "Tasks rejected by a full queue")
	Field(6, "purged", Int64, "Tasks removed for stopped cameras")
	Required("depth", "capacity", "pushed", "popped", "dropped", "purged")
})

var SystemStatus = Type("SystemStatus", func() {
	Description("System status information")
	Field(1, "cameras", ArrayOf(CameraCounters), "Per-camera pipeline counters")
	Field(2, "queue", QueueCounters, "Detection queue counters")
	Field(3, "workers", Int, "Detection worker count")
	Field(4, "detector_ready", Boolean, "Detector backend readiness")
	Field(5, "uptime_seconds", Int, "System uptime in seconds")
	Required("cameras", "queue", "workers", "detector_ready", "uptime_seconds")
})

// Health check service
var _ = Service("health", func() {
	Description("Health check endpoints for Kubernetes probes")

	Method("healthz", func() {
		Description("Liveness probe endpoint - indicates if the service is alive")
		Result(Empty)
		HTTP(func() {
			GET("/healthz")
			Response(StatusOK)
		})
	})

	Method("readyz", func() {
		Description("Readiness probe endpoint - indicates if the detector backend is reachable")
		Result(Empty)
		Error("not_ready", NotReadyError, "Service is not ready")
		HTTP(func() {
			GET("/readyz")
			Response(StatusOK)
			Response("not_ready", StatusServiceUnavailable)
		})
	})
})

// Camera management service
var _ = Service("cameras", func() {
	Description("Camera registry and capture management")

	Method("list", func() {
		Description("List all registered cameras")
		Result(ArrayOf(CameraInfo))
		HTTP(func() {
			GET("/api/v1/cameras")
			Response(StatusOK)
		})
	})

	Method("get", func() {
		Description("Get camera by ID")
		Payload(func() {
			Field(1, "id", String, "Camera ID")
			Required("id")
		})
		Result(CameraInfo)
		Error("not_found", NotFoundError, "Camera not found")
		HTTP(func() {
			GET("/api/v1/cameras/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})

	Method("create", func() {
		Description("Register a camera and start its capture")
		Payload(func() {
			Field(1, "id", String, "Camera ID, generated when omitted")
			Field(2, "name", String, "Camera display name")
			Field(3, "location", String, "Physical location")
			Field(4, "source", String, "Stream URL or looped file path")
			Field(5, "capture_fps", Int, "Capture frame rate", func() {
				Default(15)
			})
			Field(6, "detect_fps", Int, "Detection frame rate", func() {
				Default(5)
			})
			Field(7, "priority", Int, "Queue priority class", func() {
				Default(2)
				Minimum(1)
				Maximum(3)
			})
			Required("name", "source")
		})
		Result(CameraInfo)
		Error("bad_request", BadRequestError, "Invalid camera configuration")
		HTTP(func() {
			POST("/api/v1/cameras")
			Response(StatusCreated)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("delete", func() {
		Description("Stop and remove a camera")
		Payload(func() {
			Field(1, "id", String, "Camera ID")
			Required("id")
		})
		Result(Empty)
		Error("not_found", NotFoundError, "Camera not found")
		HTTP(func() {
			DELETE("/api/v1/cameras/{id}")
			Response(StatusNoContent)
			Response("not_found", StatusNotFound)
		})
	})

	Method("stats", func() {
		Description("Get pipeline counters for a camera")
		Payload(func() {
			Field(1, "id", String, "Camera ID")
			Required("id")
		})
		Result(CameraCounters)
		Error("not_found", NotFoundError, "Camera not found")
		HTTP(func() {
			GET("/api/v1/cameras/{id}/stats")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})
})

// Incident service
var _ = Service("incidents", func() {
	Description("Incident listing, review and statistics")

	Method("list", func() {
		Description("List incidents, newest first")
		Payload(func() {
			Field(1, "status", String, "Filter by status", func() {
				Enum("active", "closed", "reviewed", "confirmed", "false_alarm")
			})
			Field(2, "camera_id", String, "Filter by camera ID")
			Field(3, "page", Int, "Page number", func() {
				Default(1)
				Minimum(1)
			})
			Field(4, "page_size", Int, "Page size", func() {
				Default(20)
				Minimum(1)
				Maximum(100)
			})
		})
		Result(IncidentPage)
		HTTP(func() {
			GET("/api/v1/incidents")
			Param("status")
			Param("camera_id")
			Param("page")
			Param("page_size")
			Response(StatusOK)
		})
	})

	Method("get", func() {
		Description("Get an incident with its alerts")
		Payload(func() {
			Field(1, "id", String, "Incident ID")
			Required("id")
		})
		Result(IncidentDetail)
		Error("not_found", NotFoundError, "Incident not found")
		HTTP(func() {
			GET("/api/v1/incidents/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})

	Method("review", func() {
		Description("Apply an operator decision to an incident")
		Payload(func() {
			Field(1, "id", String, "Incident ID")
			Field(2, "decision", String, "Review decision", func() {
				Enum("confirmed", "false_alarm", "reviewed")
			})
			Field(3, "reviewed_by", String, "Reviewer identity")
			Field(4, "notes", String, "Review notes")
			Required("id", "decision", "reviewed_by")
		})
		Result(Incident)
		Error("not_found", NotFoundError, "Incident not found")
		Error("bad_request", BadRequestError, "Invalid review decision")
		HTTP(func() {
			POST("/api/v1/incidents/{id}/review")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("bad_request", StatusBadRequest)
		})
	})

	Method("close", func() {
		Description("Manually close an active incident")
		Payload(func() {
			Field(1, "id", String, "Incident ID")
			Required("id")
		})
		Result(Incident)
		Error("not_found", NotFoundError, "Incident not found")
		HTTP(func() {
			POST("/api/v1/incidents/{id}/close")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})

	Method("stats", func() {
		Description("Aggregate incident counters")
		Result(IncidentCounters)
		HTTP(func() {
			GET("/api/v1/incidents/stats")
			Response(StatusOK)
		})
	})
})

var ThrottleReset = Type("ThrottleReset", func() {
	Description("Outcome of an alert throttle reset")
	Field(1, "cleared", Int, "Throttle entries removed")
	Required("cleared")
})

// System status service
var _ = Service("system", func() {
	Description("System status and monitoring")

	Method("status", func() {
		Description("Get overall pipeline status")
		Result(SystemStatus)
		HTTP(func() {
			GET("/api/v1/system/status")
			Response(StatusOK)
		})
	})

	Method("reset_throttle", func() {
		Description("Clear alert throttle counters for one incident or for all of them")
		Payload(func() {
			Field(1, "incident_id", String, "Incident to reset; omit to reset every incident")
		})
		Result(ThrottleReset)
		HTTP(func() {
			POST("/api/v1/system/throttle/reset")
			Param("incident_id")
			Response(StatusOK)
		})
	})
})
