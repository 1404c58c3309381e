// Command namefold clusters near-duplicate company names from a text file
// into groups, without exact string matching.
//
//	namefold group names.txt
//	namefold group names.txt --threshold 0.6 --export groups.xlsx
//	namefold normalize "Ubisoft Montréal, Inc."
//	namefold config init
package main
