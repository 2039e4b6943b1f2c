package workflow

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Workflow step markers returned by the upload endpoints.
const (
	stepPersonas    = "user_personas"
	stepBrandDesign = "brand_design"
	stepThirdParty  = "third_party_apis"
	stepProviders   = "third_party_providers"
	stepComplete    = "complete"
)

// Register attaches the product-definition workflow routes to the given
// group (mounted at /api).
func Register(rg *gin.RouterGroup) {
	rg.POST("/upload_prd", uploadPRD)
	rg.GET("/get_prd", getPRD)

	rg.GET("/get_userpersonas", getUserPersonas)
	rg.POST("/get_userpersonas", getUserPersonas)
	rg.POST("/upload_userpersonas", uploadUserPersonas)

	rg.GET("/get_branddesign", getBrandDesign)
	rg.POST("/get_branddesign", getBrandDesign)
	rg.POST("/upload_branddesign", uploadBrandDesign)

	rg.GET("/get_thirdparty", getThirdParty)
	rg.POST("/get_thirdparty", getThirdParty)
	rg.POST("/upload_thirdparty", uploadThirdParty)
	rg.POST("/upload_thirdprovider", uploadThirdProvider)
}

type uploadPRDReq struct {
	PRDText string `json:"prd_text"`
}

func uploadPRD(c *gin.Context) {
	var req uploadPRDReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PRDText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prd_text is required"})
		return
	}

	log.Printf("[workflow] prd upload received (%d bytes)", len(req.PRDText))

	c.JSON(http.StatusOK, gin.H{
		"status":    "received",
		"prd_text":  req.PRDText,
		"next_step": stepPersonas,
	})
}

func getPRD(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"prd_text":  prdDocument,
		"next_step": stepPersonas,
	})
}

func getUserPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"personas":  personaFixtures,
		"next_step": stepBrandDesign,
	})
}

type uploadPersonasReq struct {
	Personas []map[string]any `json:"personas"`
}

func uploadUserPersonas(c *gin.Context) {
	var req uploadPersonasReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Personas) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "personas is required"})
		return
	}

	log.Printf("[workflow] %d persona(s) selected", len(req.Personas))

	c.JSON(http.StatusOK, gin.H{
		"status":            "received",
		"selected_personas": req.Personas,
		"next_step":         stepBrandDesign,
	})
}

func getBrandDesign(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"brand_design": brandDesignFixture,
		"next_step":    stepThirdParty,
	})
}

type uploadBrandDesignReq struct {
	BrandDesign map[string]any `json:"brand_design"`
}

func uploadBrandDesign(c *gin.Context) {
	var req uploadBrandDesignReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.BrandDesign) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "brand_design is required"})
		return
	}

	log.Printf("[workflow] brand design selected (%d fields)", len(req.BrandDesign))

	c.JSON(http.StatusOK, gin.H{
		"status":       "received",
		"brand_design": req.BrandDesign,
		"next_step":    stepThirdParty,
	})
}

func getThirdParty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"apis":      thirdPartyAPIFixtures,
		"providers": providerFixtures,
		"next_step": stepProviders,
	})
}

type uploadThirdPartyReq struct {
	APIs []map[string]any `json:"apis"`
}

func uploadThirdParty(c *gin.Context) {
	var req uploadThirdPartyReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.APIs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "apis is required"})
		return
	}

	log.Printf("[workflow] %d third-party api(s) selected", len(req.APIs))

	c.JSON(http.StatusOK, gin.H{
		"status":    "received",
		"apis":      req.APIs,
		"next_step": stepProviders,
	})
}

type uploadThirdProviderReq struct {
	Providers []map[string]any `json:"providers"`
}

func uploadThirdProvider(c *gin.Context) {
	var req uploadThirdProviderReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Providers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "providers is required"})
		return
	}

	log.Printf("[workflow] %d provider(s) selected", len(req.Providers))

	c.JSON(http.StatusOK, gin.H{
		"status":    "received",
		"providers": req.Providers,
		"next_step": stepComplete,
	})
}
