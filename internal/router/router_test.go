package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"vet-care-assistant/internal/domain/diagnosis"
	"vet-care-assistant/internal/router"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newServer(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = diagnosis.NewRand(1)
	}
	ts := httptest.NewServer(router.NewRouter(opts))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ChatSession(t *testing.T) {
	ts := newServer(t, router.Options{})

	// 1) Health
	{
		st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
		}
	}

	// 2) Iniciar sesión en tamil
	var sess struct {
		ID       string `json:"id"`
		Language string `json:"language"`
		Messages []struct {
			Sender string `json:"sender"`
			Intent string `json:"intent"`
		} `json:"messages"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/chat/sessions?lang=ta", "", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 start session, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &sess)
		if sess.ID == "" || sess.Language != "ta" {
			t.Fatalf("unexpected session: %s", string(body))
		}
		if len(sess.Messages) != 1 || sess.Messages[0].Intent != "welcome" {
			t.Fatalf("expected welcome turn, got %s", string(body))
		}
	}

	// 3) Enviar mensaje
	{
		st, body := doReq(t, ts.URL, "POST", "/chat/sessions/"+sess.ID+"/messages", "", map[string]any{
			"text": "My dog has a fever",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 send, got %d body=%s", st, string(body))
		}
		var ex struct {
			User      struct{ Text string } `json:"user"`
			Assistant struct {
				Intent string `json:"intent"`
				Text   string `json:"text"`
			} `json:"assistant"`
		}
		_ = json.Unmarshal(body, &ex)
		if ex.Assistant.Intent != "fever" || ex.Assistant.Text == "" {
			t.Fatalf("unexpected exchange: %s", string(body))
		}
	}

	// 4) Texto vacío => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/chat/sessions/"+sess.ID+"/messages", "", map[string]any{"text": "  "})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 blank text, got %d", st)
		}
	}

	// 5) Websocket sobre la misma sesión
	{
		wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/chat/sessions/" + sess.ID + "/ws"
		conn, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial websocket: %v", err)
		}
		defer res.Body.Close()
		defer conn.Close()

		if err := conn.WriteJSON(map[string]string{"text": "rabies vaccine"}); err != nil {
			t.Fatalf("write ws: %v", err)
		}
		var out struct {
			Exchange *struct {
				Assistant struct {
					Intent string `json:"intent"`
				} `json:"assistant"`
			} `json:"exchange"`
			Error string `json:"error"`
		}
		if err := conn.ReadJSON(&out); err != nil {
			t.Fatalf("read ws: %v", err)
		}
		if out.Exchange == nil || out.Exchange.Assistant.Intent != "rabies" {
			t.Fatalf("unexpected ws reply: %#v", out)
		}
	}

	// 6) Historial: bienvenida + 2 intercambios
	{
		st, body := doReq(t, ts.URL, "GET", "/chat/sessions/"+sess.ID+"/messages", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d", st)
		}
		_ = json.Unmarshal(body, &sess)
		if len(sess.Messages) != 5 {
			t.Fatalf("expected 5 turns, got %d", len(sess.Messages))
		}
	}

	// 7) Sesión desconocida => 404 (también antes del upgrade)
	{
		st, _ := doReq(t, ts.URL, "GET", "/chat/sessions/nope/messages", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/chat/sessions/nope/ws", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for ws on unknown session, got %d", st)
		}
	}
}

func TestHTTP_ChatWebsocket_RejectsOversizedFrame(t *testing.T) {
	ts := newServer(t, router.Options{})

	// 1) Sesión nueva
	var sess struct {
		ID       string            `json:"id"`
		Messages []json.RawMessage `json:"messages"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/chat/sessions", "", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 start session, got %d", st)
		}
		_ = json.Unmarshal(body, &sess)
	}

	// 2) Frame de 1MiB => el server corta la conexión sin responder
	{
		wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/chat/sessions/" + sess.ID + "/ws"
		conn, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial websocket: %v", err)
		}
		defer res.Body.Close()
		defer conn.Close()

		_ = conn.WriteJSON(map[string]string{"text": "fever " + strings.Repeat("x", 1<<20)})
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

		var out map[string]any
		if err := conn.ReadJSON(&out); err == nil {
			t.Fatalf("expected connection to be closed, got reply %v", out)
		}
	}

	// 3) El historial sigue con la bienvenida sola
	{
		st, body := doReq(t, ts.URL, "GET", "/chat/sessions/"+sess.ID+"/messages", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d", st)
		}
		_ = json.Unmarshal(body, &sess)
		if len(sess.Messages) != 1 {
			t.Fatalf("expected only welcome turn, got %d", len(sess.Messages))
		}
	}
}

func TestHTTP_ChatReply_UsesAcceptLanguage(t *testing.T) {
	ts := newServer(t, router.Options{})

	st, body := doReq(t, ts.URL, "POST", "/chat/reply", "ta-LK,ta;q=0.9", map[string]any{"text": "hello"})
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var resp struct {
		Intent   string `json:"intent"`
		Language string `json:"language"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Intent != "general" || resp.Language != "ta" {
		t.Fatalf("unexpected reply: %s", string(body))
	}
}

func TestHTTP_Detections(t *testing.T) {
	ts := newServer(t, router.Options{MaxUploadBytes: 1024})

	// 1) Imagen válida
	{
		st, body := upload(t, ts.URL, "pet.png", pngHeader, "dog")
		if st != http.StatusOK {
			t.Fatalf("expected 200 upload, got %d body=%s", st, string(body))
		}
		var res struct {
			Category   string   `json:"category"`
			Confidence int      `json:"confidence"`
			Symptoms   []string `json:"symptoms"`
			Media      *struct {
				ContentType string `json:"content_type"`
			} `json:"media"`
		}
		_ = json.Unmarshal(body, &res)
		if res.Category != "dog" || res.Confidence < 75 || res.Confidence > 95 {
			t.Fatalf("unexpected result: %s", string(body))
		}
		if len(res.Symptoms) < 2 || len(res.Symptoms) > 4 {
			t.Fatalf("unexpected symptoms: %v", res.Symptoms)
		}
		if res.Media == nil || res.Media.ContentType != "image/png" {
			t.Fatalf("expected png media, got %s", string(body))
		}
	}

	// 2) Archivo que no es imagen ni video => 415
	{
		st, _ := upload(t, ts.URL, "notes.txt", []byte("just some text"), "dog")
		if st != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415, got %d", st)
		}
	}

	// 3) Archivo más grande que el límite => 413
	{
		big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 2048)...)
		st, _ := upload(t, ts.URL, "big.png", big, "dog")
		if st != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", st)
		}
	}

	// 4) Sin archivo, categoría desconocida => tabla genérica
	{
		st, body := doReq(t, ts.URL, "POST", "/detections/horse", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 generate, got %d", st)
		}
		if !strings.Contains(string(body), `"category":"generic"`) {
			t.Fatalf("expected generic category, got %s", string(body))
		}
	}
}

func TestHTTP_Emergency(t *testing.T) {
	ts := newServer(t, router.Options{Hotline: "+94 11 123 4567"})

	{
		st, body := doReq(t, ts.URL, "GET", "/emergency/dog/severe_bleeding?lang=en", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var p struct {
			Steps   []string `json:"steps"`
			Warning string   `json:"warning"`
			Hotline struct {
				Number string `json:"number"`
			} `json:"hotline"`
		}
		_ = json.Unmarshal(body, &p)
		want := []string{
			"Keep calm and approach the dog carefully",
			"Apply direct pressure to the wound with clean cloth",
			"If bleeding doesn't stop, apply pressure to pressure points",
			"Elevate the wounded area if possible",
			"Apply bandage and seek immediate veterinary care",
		}
		if !reflect.DeepEqual(p.Steps, want) {
			t.Fatalf("unexpected steps: %v", p.Steps)
		}
		if p.Warning == "" || p.Hotline.Number != "+94 11 123 4567" {
			t.Fatalf("unexpected protocol: %s", string(body))
		}
	}

	// combinación sin protocolo => 200 con lista vacía (no null)
	{
		st, body := doReq(t, ts.URL, "GET", "/emergency/pig/seizures", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if !strings.Contains(string(body), `"steps":[]`) {
			t.Fatalf("expected empty steps list, got %s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/emergency/types?lang=ta", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "severe_bleeding") {
			t.Fatalf("unexpected types: %d %s", st, string(body))
		}
	}
}

func TestHTTP_Vets(t *testing.T) {
	ts := newServer(t, router.Options{})

	// 1) Sin ubicación => 400 con mensaje localizado
	{
		st, body := doReq(t, ts.URL, "GET", "/vets?lang=ta", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without location, got %d", st)
		}
		var e struct {
			Error  string `json:"error"`
			Action string `json:"action"`
		}
		_ = json.Unmarshal(body, &e)
		if e.Error != "அருகிலுள்ள மருத்துவர்களைக் கண்டறிய இடம் அணுகல் தேவை" || e.Action == "" {
			t.Fatalf("unexpected error body: %s", string(body))
		}
	}

	// 2) Con ubicación, ordenado por distancia
	{
		st, body := doReq(t, ts.URL, "GET", "/vets?lat=9.66&lng=80.02", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		var list []struct {
			Name       string  `json:"name"`
			DistanceKm float64 `json:"distance_km"`
			CallURL    string  `json:"call_url"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 4 {
			t.Fatalf("expected 4 vets, got %d", len(list))
		}
		if list[0].Name != "Dr. Kumaran Veterinary Clinic" || list[0].CallURL != "tel:+94212285678" {
			t.Fatalf("unexpected first vet: %#v", list[0])
		}
	}

	// 3) Filtros
	{
		st, body := doReq(t, ts.URL, "GET", "/vets?lat=9.66&lng=80.02&open_now=true&emergency=true", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []json.RawMessage
		_ = json.Unmarshal(body, &list)
		if len(list) != 2 {
			t.Fatalf("expected 2 vets, got %d", len(list))
		}
	}

	// 4) Detalle
	{
		st, _ := doReq(t, ts.URL, "GET", "/vets/99", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}
}

func TestHTTP_PrescriptionsAndViews(t *testing.T) {
	ts := newServer(t, router.Options{})

	{
		st, body := doReq(t, ts.URL, "GET", "/prescriptions?animal=cattle", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var list []struct {
			Condition string `json:"condition"`
		}
		_ = json.Unmarshal(body, &list)
		if len(list) != 1 || list[0].Condition != "Mastitis" {
			t.Fatalf("unexpected prescriptions: %s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/views/emergency?lang=ta", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "அவசர முதலுதவி") {
			t.Fatalf("unexpected view: %d %s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/categories", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"key":"poultry"`) {
			t.Fatalf("unexpected categories: %d %s", st, string(body))
		}
	}
}

func TestHTTP_SwaggerAndMetrics(t *testing.T) {
	ts := newServer(t, router.Options{})

	// genera al menos una respuesta de chat para el contador
	_, _ = doReq(t, ts.URL, "POST", "/chat/reply", "", map[string]any{"text": "pig"})

	{
		st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 doc.json, got %d", st)
		}
		var doc map[string]any
		if err := json.Unmarshal(body, &doc); err != nil {
			t.Fatalf("doc.json is not valid json: %v", err)
		}
		if doc["swagger"] != "2.0" {
			t.Fatalf("unexpected doc: %v", doc["swagger"])
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 metrics, got %d", st)
		}
		if !strings.Contains(string(body), `vetcare_chat_replies_total{intent="pig"} 1`) {
			t.Fatalf("expected chat reply counter in metrics output")
		}
	}
}

func upload(t *testing.T, baseURL, fileName string, content []byte, category string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("category", category); err != nil {
		t.Fatalf("write field: %v", err)
	}
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest("POST", baseURL+"/detections", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, body
}

func doReq(t *testing.T, baseURL, method, path, acceptLanguage string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
