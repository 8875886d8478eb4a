package models

// Provider is a single entry in the provider directory. Rating is 0 to 5,
// Distance is kilometres from the customer and Price is a display string.
type Provider struct {
	ID           string  `bson:"id" json:"id"`
	Name         string  `bson:"name" json:"name"`
	Service      string  `bson:"service" json:"service"`
	CategoryID   string  `bson:"categoryId" json:"categoryId"`
	Rating       float64 `bson:"rating" json:"rating"`
	ReviewCount  int     `bson:"reviewCount" json:"reviewCount"`
	Distance     float64 `bson:"distance" json:"distance"`
	Price        string  `bson:"price" json:"price"`
	Verified     bool    `bson:"verified" json:"verified"`
	Description  string  `bson:"description" json:"description"`
	Phone        string  `bson:"phone" json:"phone"`
	ResponseTime string  `bson:"responseTime" json:"responseTime"`
	Avatar       string  `bson:"avatar,omitempty" json:"avatar,omitempty"`
	City         string  `bson:"city,omitempty" json:"city,omitempty"`
	Pincode      string  `bson:"pincode,omitempty" json:"pincode,omitempty"`
}
