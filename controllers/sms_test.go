package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMessageRouter(mc *MessageController) *gin.Engine {
	r := gin.New()
	r.POST("/api/msg/send-sms", mc.SendSMS)
	r.POST("/api/WhatappRoutes/send-whatsapp", mc.SendWhatsapp)
	return r
}

func TestSendSMS(t *testing.T) {
	notify := &fakeNotifier{}
	r := newMessageRouter(NewMessageController(notify))

	w := doJSON(t, r, http.MethodPost, "/api/msg/send-sms", gin.H{
		"body": "New appointment booked for 2026-09-01 at 10:00",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "SMS sent successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if len(notify.smsBodies) != 1 || notify.smsBodies[0] != "New appointment booked for 2026-09-01 at 10:00" {
		t.Errorf("sms bodies = %v", notify.smsBodies)
	}
}

func TestSendSMSFailure(t *testing.T) {
	notify := &fakeNotifier{err: errors.New("twilio down")}
	r := newMessageRouter(NewMessageController(notify))

	w := doJSON(t, r, http.MethodPost, "/api/msg/send-sms", gin.H{"body": "hello"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["error"] != "Failed to send SMS" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestSendWhatsapp(t *testing.T) {
	notify := &fakeNotifier{}
	r := newMessageRouter(NewMessageController(notify))

	w := doJSON(t, r, http.MethodPost, "/api/WhatappRoutes/send-whatsapp", gin.H{
		"name":       "Jane Doe",
		"number":     "9876543210",
		"doctorName": "Gregory House",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["messageSid"] != "SM123" {
		t.Errorf("messageSid = %v", body["messageSid"])
	}
	if len(notify.whatsapps) != 1 || notify.whatsapps[0].doctorName != "Gregory House" {
		t.Errorf("whatsapps = %v", notify.whatsapps)
	}
}

func TestSendWhatsappMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		payload gin.H
		wantErr string
	}{
		{"both missing", gin.H{}, "Name and phone number are required"},
		{"name missing", gin.H{"number": "9876543210"}, "Name is required"},
		{"number missing", gin.H{"name": "Jane Doe"}, "Phone number is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notify := &fakeNotifier{}
			r := newMessageRouter(NewMessageController(notify))

			w := doJSON(t, r, http.MethodPost, "/api/WhatappRoutes/send-whatsapp", tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if body := decodeBody(t, w); body["error"] != tc.wantErr {
				t.Errorf("error = %v, want %s", body["error"], tc.wantErr)
			}
			if len(notify.whatsapps) != 0 {
				t.Error("nothing must be dispatched on validation failure")
			}
		})
	}
}
