package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lagoon/db"
	"lagoon/globals"
	"lagoon/trips"
	"lagoon/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var coverUploadDir = "./static/coverpic"

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func processCoverUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := uuid.New().String()
	fileName := uniqueID + ".jpg"

	originalPath := filepath.Join(coverUploadDir, fileName)
	thumbDir := filepath.Join(coverUploadDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := ensureDirExists(coverUploadDir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/coverpic/" + fileName, nil
}

var store = trips.NewStore()

// POST /api/trips/trip/:shortid/cover
// Owner uploads a cover photo for the shared trip page.
func UploadTripCover(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	trip, err := store.FindTripByShortID(ctx, ps.ByName("shortid"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if trip.UserID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	files := r.MultipartForm.File["cover"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing cover file")
		return
	}
	file := files[0]

	if !supportedImageTypes[file.Header.Get("Content-Type")] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF.")
		return
	}

	path, err := processCoverUpload(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to process image")
		return
	}

	_, err = db.TripsCollection.UpdateOne(ctx, bson.M{"tripid": trip.TripID}, bson.M{"$set": bson.M{"cover_url": path}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save cover")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bson.M{"cover_url": path})
}
