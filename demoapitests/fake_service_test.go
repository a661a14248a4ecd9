package demoapitests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const fakePostCount = 100

// fakeService imitates the public demo API closely enough for the whole suite to pass
// against it, including its quirks.
type fakeService struct {
	titles map[int]string
}

func newFakeService() *fakeService {
	titles := make(map[int]string)
	for i := 1; i <= fakePostCount; i++ {
		titles[i] = fmt.Sprintf("post number %d", i)
	}
	for _, p := range knownPostTitles {
		id, _ := strconv.Atoi(p.id)
		titles[id] = p.title
	}
	return &fakeService{titles: titles}
}

func (f *fakeService) handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/posts", f.listPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", f.createPost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:-?[0-9]+}", f.getPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id:-?[0-9]+}", f.updatePost).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id:-?[0-9]+}", f.deletePost).Methods(http.MethodDelete)
	r.HandleFunc("/posts/{id:-?[0-9]+}/comments", f.createComment).Methods(http.MethodPost)
	r.HandleFunc("/comments", f.listComments).Methods(http.MethodGet)
	return r
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// readObject returns the request body as a JSON object; an empty body is an empty object.
func readObject(r *http.Request) (map[string]interface{}, error) {
	obj := make(map[string]interface{})
	if r.ContentLength == 0 {
		return obj, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (f *fakeService) post(id int) map[string]interface{} {
	return map[string]interface{}{
		"userId": (id-1)/10 + 1,
		"id":     id,
		"title":  f.titles[id],
		"body":   "body of post " + strconv.Itoa(id),
	}
}

func (f *fakeService) listPosts(w http.ResponseWriter, r *http.Request) {
	var posts []map[string]interface{}
	for i := 1; i <= fakePostCount; i++ {
		posts = append(posts, f.post(i))
	}
	writeJSON(w, http.StatusOK, posts)
}

func (f *fakeService) getPost(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if id < 1 || id > fakePostCount {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, f.post(id))
}

func (f *fakeService) createPost(w http.ResponseWriter, r *http.Request) {
	obj, err := readObject(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{})
		return
	}
	obj["id"] = fakePostCount + 1
	writeJSON(w, http.StatusCreated, obj)
}

func (f *fakeService) updatePost(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	obj, err := readObject(r)
	if err != nil || id < 1 || id > fakePostCount {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{})
		return
	}
	if userID, ok := obj["userId"].(float64); ok && userID > 10 {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{})
		return
	}
	obj["id"] = id
	writeJSON(w, http.StatusOK, obj)
}

func (f *fakeService) deletePost(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{})
}

func (f *fakeService) createComment(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	obj, err := readObject(r)
	if err != nil || id < 1 || id > fakePostCount {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{})
		return
	}
	obj["id"] = 501
	// the real service copies the route parameter, so postId comes back as a string
	obj["postId"] = mux.Vars(r)["id"]
	writeJSON(w, http.StatusCreated, obj)
}

func (f *fakeService) listComments(w http.ResponseWriter, r *http.Request) {
	postID, _ := strconv.Atoi(r.URL.Query().Get("postId"))
	var comments []map[string]interface{}
	for i := 1; i <= 5; i++ {
		comments = append(comments, map[string]interface{}{
			"postId": postID,
			"id":     (postID-1)*5 + i,
			"name":   "comment " + strconv.Itoa(i),
			"email":  fmt.Sprintf("user%d@example.com", i),
			"body":   "text",
		})
	}
	writeJSON(w, http.StatusOK, comments)
}
