package models

// Topic groups episodes. Episodes reference it optionally by id.
type Topic struct {
	ID      int64  `bson:"id" json:"id"`
	TitleEn string `bson:"titleEn" json:"titleEn"`
	TitleFa string `bson:"titleFa" json:"titleFa"`
}
